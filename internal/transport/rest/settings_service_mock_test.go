package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
	"github.com/heartmarshall/franken-backoffice/internal/service/settings"
)

var _ settingsService = &settingsServiceMock{}

type settingsServiceMock struct {
	GetSettingsFunc    func(ctx context.Context) (*domain.Settings, error)
	UpdateSettingsFunc func(ctx context.Context, input settings.UpdateSettingsInput) (*domain.Settings, error)
	NumberPreviewFunc  func(ctx context.Context) (string, error)

	calls struct {
		GetSettings []struct {
			Ctx context.Context
		}
		UpdateSettings []struct {
			Ctx   context.Context
			Input settings.UpdateSettingsInput
		}
		NumberPreview []struct {
			Ctx context.Context
		}
	}
	lockGetSettings    sync.RWMutex
	lockUpdateSettings sync.RWMutex
	lockNumberPreview  sync.RWMutex
}

func (mock *settingsServiceMock) GetSettings(ctx context.Context) (*domain.Settings, error) {
	if mock.GetSettingsFunc == nil {
		panic("settingsServiceMock.GetSettingsFunc: method is nil but settingsService.GetSettings was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetSettings.Lock()
	mock.calls.GetSettings = append(mock.calls.GetSettings, callInfo)
	mock.lockGetSettings.Unlock()
	return mock.GetSettingsFunc(ctx)
}

func (mock *settingsServiceMock) GetSettingsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetSettings.RLock()
	calls = mock.calls.GetSettings
	mock.lockGetSettings.RUnlock()
	return calls
}

func (mock *settingsServiceMock) UpdateSettings(ctx context.Context, input settings.UpdateSettingsInput) (*domain.Settings, error) {
	if mock.UpdateSettingsFunc == nil {
		panic("settingsServiceMock.UpdateSettingsFunc: method is nil but settingsService.UpdateSettings was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input settings.UpdateSettingsInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateSettings.Lock()
	mock.calls.UpdateSettings = append(mock.calls.UpdateSettings, callInfo)
	mock.lockUpdateSettings.Unlock()
	return mock.UpdateSettingsFunc(ctx, input)
}

func (mock *settingsServiceMock) UpdateSettingsCalls() []struct {
	Ctx   context.Context
	Input settings.UpdateSettingsInput
} {
	var calls []struct {
		Ctx   context.Context
		Input settings.UpdateSettingsInput
	}
	mock.lockUpdateSettings.RLock()
	calls = mock.calls.UpdateSettings
	mock.lockUpdateSettings.RUnlock()
	return calls
}

func (mock *settingsServiceMock) NumberPreview(ctx context.Context) (string, error) {
	if mock.NumberPreviewFunc == nil {
		panic("settingsServiceMock.NumberPreviewFunc: method is nil but settingsService.NumberPreview was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockNumberPreview.Lock()
	mock.calls.NumberPreview = append(mock.calls.NumberPreview, callInfo)
	mock.lockNumberPreview.Unlock()
	return mock.NumberPreviewFunc(ctx)
}

func (mock *settingsServiceMock) NumberPreviewCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockNumberPreview.RLock()
	calls = mock.calls.NumberPreview
	mock.lockNumberPreview.RUnlock()
	return calls
}

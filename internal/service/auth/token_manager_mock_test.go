package auth

import (
	"sync"
	"time"

	"github.com/heartmarshall/franken-backoffice/internal/auth"
	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

var _ tokenManager = &tokenManagerMock{}

type tokenManagerMock struct {
	IssueFunc    func(u *domain.User) (string, time.Time, error)
	ValidateFunc func(token string) (auth.Identity, error)

	calls struct {
		Issue []struct {
			U *domain.User
		}
		Validate []struct {
			Token string
		}
	}
	lockIssue    sync.RWMutex
	lockValidate sync.RWMutex
}

func (mock *tokenManagerMock) Issue(u *domain.User) (string, time.Time, error) {
	if mock.IssueFunc == nil {
		panic("tokenManagerMock.IssueFunc: method is nil but tokenManager.Issue was just called")
	}
	callInfo := struct {
		U *domain.User
	}{
		U: u,
	}
	mock.lockIssue.Lock()
	mock.calls.Issue = append(mock.calls.Issue, callInfo)
	mock.lockIssue.Unlock()
	return mock.IssueFunc(u)
}

func (mock *tokenManagerMock) IssueCalls() []struct {
	U *domain.User
} {
	var calls []struct {
		U *domain.User
	}
	mock.lockIssue.RLock()
	calls = mock.calls.Issue
	mock.lockIssue.RUnlock()
	return calls
}

func (mock *tokenManagerMock) Validate(token string) (auth.Identity, error) {
	if mock.ValidateFunc == nil {
		panic("tokenManagerMock.ValidateFunc: method is nil but tokenManager.Validate was just called")
	}
	callInfo := struct {
		Token string
	}{
		Token: token,
	}
	mock.lockValidate.Lock()
	mock.calls.Validate = append(mock.calls.Validate, callInfo)
	mock.lockValidate.Unlock()
	return mock.ValidateFunc(token)
}

func (mock *tokenManagerMock) ValidateCalls() []struct {
	Token string
} {
	var calls []struct {
		Token string
	}
	mock.lockValidate.RLock()
	calls = mock.calls.Validate
	mock.lockValidate.RUnlock()
	return calls
}

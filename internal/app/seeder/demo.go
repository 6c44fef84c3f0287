package seeder

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/franken-backoffice/internal/service/customer"
	"github.com/heartmarshall/franken-backoffice/internal/service/product"
)

func strPtr(s string) *string { return &s }

func demoCustomers() []customer.CreateCustomerInput {
	return []customer.CreateCustomerInput{
		{Name: "Anna Berg", Street: "Hauptstraße 12", Zip: "10115", City: "Berlin", Email: strPtr("anna.berg@example.de")},
		{Name: "Jonas Keller", Company: strPtr("Keller Raumdesign GmbH"), Street: "Marktplatz 3", Zip: "80331", City: "München", TaxID: strPtr("DE123456789")},
		{Name: "Marie Wolf", Street: "Seeweg 7", Zip: "6300", City: "Zug", Country: "Schweiz", Phone: strPtr("+41 41 000 00 00")},
	}
}

func demoProducts() []product.CreateProductInput {
	return []product.CreateProductInput{
		{Name: "Wandfliese Weiß 20x20", SKU: strPtr("WF-2020-W"), Category: "Fliesen", PurchasePrice: decimal.RequireFromString("18.40"), SellingPrice: decimal.RequireFromString("32.90"), InitialStock: 120, StockMinimum: 20, Location: strPtr("Regal A1")},
		{Name: "Bodenfliese Anthrazit 60x60", SKU: strPtr("BF-6060-A"), Category: "Fliesen", PurchasePrice: decimal.RequireFromString("24.10"), SellingPrice: decimal.RequireFromString("44.50"), InitialStock: 8, StockMinimum: 10, Location: strPtr("Regal B3")},
		{Name: "Fugenmörtel Grau 5kg", SKU: strPtr("FM-5-G"), Category: "Zubehör", PurchasePrice: decimal.RequireFromString("6.20"), SellingPrice: decimal.RequireFromString("11.90"), InitialStock: 40, StockMinimum: 5, Supplier: strPtr("Baustoff Nord")},
		{Name: "Fliesenkleber Flex 25kg", SKU: strPtr("FK-25-F"), Category: "Zubehör", PurchasePrice: decimal.RequireFromString("14.00"), SellingPrice: decimal.RequireFromString("24.90"), InitialStock: 0, StockMinimum: 4},
	}
}

// runDemo creates the demo catalog unless customers or products already exist.
func (p *Pipeline) runDemo(ctx context.Context) PhaseResult {
	var res PhaseResult

	existing, err := p.deps.Customers.ListCustomers(ctx, customer.ListCustomersInput{Limit: 1})
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("list customers: %w", err)}
	}
	if len(existing) > 0 {
		res.Skipped += len(demoCustomers())
	} else {
		for _, in := range demoCustomers() {
			if _, err := p.deps.Customers.CreateCustomer(ctx, in); err != nil {
				return PhaseResult{Err: fmt.Errorf("create customer %q: %w", in.Name, err)}
			}
			res.Inserted++
		}
	}

	products, err := p.deps.Products.ListProducts(ctx, product.ListProductsInput{Limit: 1})
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("list products: %w", err)}
	}
	if len(products) > 0 {
		res.Skipped += len(demoProducts())
		return res
	}
	for _, in := range demoProducts() {
		if _, err := p.deps.Products.CreateProduct(ctx, in); err != nil {
			return PhaseResult{Err: fmt.Errorf("create product %q: %w", in.Name, err)}
		}
		res.Inserted++
	}
	return res
}

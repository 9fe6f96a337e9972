package salesgen

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Catalog holds the value tables records are sampled from.
type Catalog struct {
	Categories     []string            `yaml:"categories"`
	Products       map[string][]string `yaml:"products"`
	Regions        []string            `yaml:"regions"`
	Statuses       []string            `yaml:"statuses"`
	PaymentMethods []string            `yaml:"payment_methods"`
	Customers      []string            `yaml:"customers"`
}

// DefaultCatalog returns the built-in sales tables.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Categories: []string{"Electronics", "Clothing", "Home & Garden", "Sports", "Books"},
		Products: map[string][]string{
			"Electronics":   {"Laptop", "Smartphone", "Tablet", "Headphones", "Camera"},
			"Clothing":      {"T-Shirt", "Jeans", "Jacket", "Sneakers", "Watch"},
			"Home & Garden": {"Blender", "Coffee Maker", "Lamp", "Plant Pot", "Tool Set"},
			"Sports":        {"Tennis Racket", "Yoga Mat", "Basketball", "Running Shoes", "Gym Bag"},
			"Books":         {"Novel", "Textbook", "Magazine", "Comics", "Audiobook"},
		},
		Regions:        []string{"North", "South", "East", "West", "Central"},
		Statuses:       []string{"Completed", "Pending", "Shipped", "Delivered", "Cancelled"},
		PaymentMethods: []string{"Credit Card", "PayPal", "Bank Transfer", "Cash on Delivery"},
		Customers: []string{
			"John Smith", "Emily Johnson", "Michael Brown", "Sarah Davis", "David Wilson",
			"Jessica Martinez", "Christopher Lee", "Amanda Taylor", "Daniel Anderson", "Ashley Thomas",
			"Matthew Jackson", "Jennifer White", "Andrew Harris", "Michelle Martin", "Joshua Thompson",
			"Laura Garcia", "James Robinson", "Stephanie Clark", "Robert Rodriguez", "Nicole Lewis",
		},
	}
}

// LoadCatalog reads a YAML catalog from path. Tables the file leaves out are
// taken from DefaultCatalog; categories and products are replaced together.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	def := DefaultCatalog()
	if len(c.Categories) == 0 && len(c.Products) == 0 {
		c.Categories, c.Products = def.Categories, def.Products
	}
	if len(c.Regions) == 0 {
		c.Regions = def.Regions
	}
	if len(c.Statuses) == 0 {
		c.Statuses = def.Statuses
	}
	if len(c.PaymentMethods) == 0 {
		c.PaymentMethods = def.PaymentMethods
	}
	if len(c.Customers) == 0 {
		c.Customers = def.Customers
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every table is non-empty and every category has products.
func (c *Catalog) Validate() error {
	tables := []struct {
		name   string
		values []string
	}{
		{"categories", c.Categories},
		{"regions", c.Regions},
		{"statuses", c.Statuses},
		{"payment_methods", c.PaymentMethods},
		{"customers", c.Customers},
	}
	for _, t := range tables {
		if len(t.values) == 0 {
			return fmt.Errorf("%w: %s is empty", ErrInvalidCatalog, t.name)
		}
	}

	for _, category := range c.Categories {
		if len(c.Products[category]) == 0 {
			return fmt.Errorf("%w: category %q has no products", ErrInvalidCatalog, category)
		}
	}
	return nil
}

// HasProduct reports whether product belongs to category.
func (c *Catalog) HasProduct(category, product string) bool {
	return slices.Contains(c.Products[category], product)
}

// HasCategory reports whether category is listed in the catalog.
func (c *Catalog) HasCategory(category string) bool {
	return slices.Contains(c.Categories, category)
}

// Package catalog is the static product list the ordering flow sells
// from. It is read-only: the lifecycle engine snapshots prices out of it
// and never writes back.
package catalog

import "github.com/lacomanda/comanda/models"

// Catalog answers product and sauce lookups for order creation.
type Catalog struct {
	products map[string]models.Product
	order    []string
	sauces   map[string]models.Addon
}

// Default returns the built-in menu.
func Default() *Catalog {
	c := &Catalog{
		products: make(map[string]models.Product),
		sauces:   make(map[string]models.Addon),
	}
	for _, p := range menu {
		c.products[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	for _, s := range sauces {
		c.sauces[s.Name] = s
	}
	return c
}

// Product resolves a product id.
func (c *Catalog) Product(id string) (models.Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

// Sauce resolves a sauce by name.
func (c *Catalog) Sauce(name string) (models.Addon, bool) {
	s, ok := c.sauces[name]
	return s, ok
}

// Products lists the menu in display order.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.products[id])
	}
	return out
}

// Sauces lists the available sauces.
func (c *Catalog) Sauces() []models.Addon {
	out := make([]models.Addon, 0, len(sauces))
	out = append(out, sauces...)
	return out
}

var menu = []models.Product{
	{ID: "prod-001", Name: "Pollo a la Brasa 1/4", Category: "Pollos", Price: 22.00, Description: "Cuarto de pollo con papas fritas y ensalada"},
	{ID: "prod-002", Name: "Pollo a la Brasa 1/2", Category: "Pollos", Price: 40.00, Description: "Medio pollo con papas fritas y ensalada"},
	{ID: "prod-003", Name: "Pollo a la Brasa Entero", Category: "Pollos", Price: 75.00, Description: "Pollo entero con papas fritas y ensalada familiar"},
	{ID: "prod-004", Name: "Lomo Saltado", Category: "Platos", Price: 28.00, Description: "Lomo fino salteado con papas y arroz"},
	{ID: "prod-005", Name: "Ají de Gallina", Category: "Platos", Price: 24.00},
	{ID: "prod-006", Name: "Arroz Chaufa", Category: "Platos", Price: 20.00},
	{ID: "prod-007", Name: "Salchipapa", Category: "Piqueos", Price: 15.00},
	{ID: "prod-008", Name: "Porción de Papas", Category: "Piqueos", Price: 10.00},
	{ID: "prod-009", Name: "Inca Kola 500ml", Category: "Bebidas", Price: 5.00},
	{ID: "prod-010", Name: "Inca Kola 1.5L", Category: "Bebidas", Price: 10.00},
	{ID: "prod-011", Name: "Chicha Morada 1L", Category: "Bebidas", Price: 12.00},
	{ID: "prod-012", Name: "Agua Mineral", Category: "Bebidas", Price: 3.50},
}

var sauces = []models.Addon{
	{Name: "Mayonesa", Price: 0},
	{Name: "Ketchup", Price: 0},
	{Name: "Mostaza", Price: 0},
	{Name: "Ají de la casa", Price: 0},
	{Name: "Salsa Golf", Price: 1.00},
	{Name: "Huancaína", Price: 2.50},
	{Name: "Ocopa", Price: 2.50},
}

// DineInTables are the numbered tables of the dining room the occupancy
// view derives over.
var DineInTables = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

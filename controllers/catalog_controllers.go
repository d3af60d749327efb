package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lacomanda/comanda/catalog"
	"github.com/lacomanda/comanda/utils"
)

type CatalogController struct {
	Catalog *catalog.Catalog
}

func NewCatalogController(cat *catalog.Catalog) *CatalogController {
	return &CatalogController{Catalog: cat}
}

// GetProducts lists the menu the ordering flow sells from.
func (cc *CatalogController) GetProducts(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Product catalog", cc.Catalog.Products())
}

// GetSauces lists the sauce add-ons with their prices.
func (cc *CatalogController) GetSauces(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Sauce list", cc.Catalog.Sauces())
}

package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lacomanda/comanda/catalog"
	"github.com/lacomanda/comanda/lifecycle"
	"github.com/lacomanda/comanda/store"
	"github.com/lacomanda/comanda/utils"
)

type TableController struct {
	Store *store.Store
}

func NewTableController(st *store.Store) *TableController {
	return &TableController{Store: st}
}

// GetTables returns the derived occupancy view: a table is occupied while
// a dine-in order on it is in a non-terminal status. Nothing is stored;
// this recomputes from the order collection on every call.
func (tc *TableController) GetTables(c *gin.Context) {
	tables := lifecycle.Tables(tc.Store.Orders(), catalog.DineInTables)
	utils.RespondJSON(c, http.StatusOK, "Table occupancy", tables)
}

// GetTableOrder returns the open order occupying a table, for the POS view
// and the pre-bill flow.
func (tc *TableController) GetTableOrder(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, ok := lifecycle.OpenOrderForTable(tc.Store.Orders(), number)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, store.ErrNotFound)
		return
	}
	order.ElapsedSeconds = lifecycle.Elapsed(order, time.Now())
	utils.RespondJSON(c, http.StatusOK, "Open order for table", order)
}

package controllers

import (
	"errors"
	"math/rand"
	"strconv"
	"time"

	"github.com/Saaaaaad3/Plattera/entity"
	"github.com/Saaaaaad3/Plattera/pkg/resp"
	"github.com/Saaaaaad3/Plattera/repository"
	"github.com/Saaaaaad3/Plattera/services"
	"github.com/Saaaaaad3/Plattera/utils"
	"github.com/Saaaaaad3/Plattera/ws"
	"github.com/gin-gonic/gin"
)

// MenuController reads menus through the menu store and routes owner
// mutations through it, pushing resulting events to the menu hub.
type MenuController struct {
	Store       *services.MenuStore
	Restaurants *repository.RestaurantRepository
	Hub         *ws.MenuHub
}

func NewMenuController(store *services.MenuStore, restaurants *repository.RestaurantRepository, hub *ws.MenuHub) *MenuController {
	return &MenuController{Store: store, Restaurants: restaurants, Hub: hub}
}

func (ctl *MenuController) load(c *gin.Context) (uint, bool) {
	restID, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Store.FetchAll(uint(restID)); err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			resp.NotFound(c, err.Error())
		} else {
			resp.ServerError(c, err)
		}
		return 0, false
	}
	return uint(restID), true
}

// GET /restaurants/:id/items
func (ctl *MenuController) ListItems(c *gin.Context) {
	restID, ok := ctl.load(c)
	if !ok {
		return
	}
	resp.OK(c, gin.H{"items": ctl.Store.ItemsFor(restID)})
}

// GET /restaurants/:id/categories
func (ctl *MenuController) ListCategories(c *gin.Context) {
	restID, ok := ctl.load(c)
	if !ok {
		return
	}
	resp.OK(c, gin.H{"categories": services.GroupByCategory(ctl.Store.ItemsFor(restID))})
}

// GET /restaurants/:id/categories/:category/items?page=&limit=&width=
// The window in the response is cumulative: page 2 carries pages 1-2.
func (ctl *MenuController) CategoryPage(c *gin.Context) {
	restID, ok := ctl.load(c)
	if !ok {
		return
	}
	category := c.Param("category")

	settings := services.BaseSettings()
	if width, err := strconv.Atoi(c.Query("width")); err == nil {
		settings = services.SettingsFor(services.BreakpointFor(width))
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		limit = settings.InitialLimit
	}

	win, err := ctl.Store.FetchCategoryPage(restID, category, page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"items":      win.Items,
		"page":       win.Page,
		"totalItems": win.TotalItems,
		"hasMore":    win.HasMore,
	})
}

// GET /restaurants/:id/items/:itemId
func (ctl *MenuController) ItemDetail(c *gin.Context) {
	restID, ok := ctl.load(c)
	if !ok {
		return
	}
	itemID, _ := strconv.Atoi(c.Param("itemId"))

	item, found := ctl.Store.Item(restID, uint(itemID))
	if !found {
		resp.NotFound(c, "food item not found")
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sides := services.RecommendSides(ctl.Store.ItemsFor(restID), item.ItemNumber, services.RecommendedSidesCount, rng)
	resp.OK(c, gin.H{
		"item":             item,
		"displayPrice":     utils.DisplayPrice(item.ItemPrice),
		"recommendedSides": sides,
	})
}

func (ctl *MenuController) authorizeOwner(c *gin.Context, restID uint) bool {
	rest, err := ctl.Restaurants.FindByID(restID)
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return false
	}
	if rest.UserID != utils.CurrentUserID(c) {
		resp.Forbidden(c, "not your restaurant")
		return false
	}
	return true
}

// POST /owner/restaurants/:id/items
func (ctl *MenuController) CreateItem(c *gin.Context) {
	restID, ok := ctl.load(c)
	if !ok {
		return
	}
	if !ctl.authorizeOwner(c, restID) {
		return
	}

	var req entity.MenuItem
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Store.AddItem(restID, req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidItem) {
			resp.BadRequest(c, err.Error())
		} else {
			resp.ServerError(c, err)
		}
		return
	}
	ctl.Hub.Notify(restID, ws.EventItemAdded, item)
	resp.Created(c, item)
}

// PUT /owner/restaurants/:id/items/:itemId
func (ctl *MenuController) UpdateItem(c *gin.Context) {
	restID, ok := ctl.load(c)
	if !ok {
		return
	}
	if !ctl.authorizeOwner(c, restID) {
		return
	}
	itemID, _ := strconv.Atoi(c.Param("itemId"))

	var req entity.MenuItem
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	req.ItemNumber = uint(itemID)
	req.RestaurantID = restID

	if err := ctl.Store.UpdateItem(restID, req); err != nil {
		if errors.Is(err, services.ErrInvalidItem) {
			resp.BadRequest(c, err.Error())
		} else {
			resp.ServerError(c, err)
		}
		return
	}
	item, _ := ctl.Store.Item(restID, req.ItemNumber)
	ctl.Hub.Notify(restID, ws.EventItemUpdated, &item)
	resp.OK(c, item)
}

// DELETE /owner/restaurants/:id/items/:itemId
func (ctl *MenuController) DeleteItem(c *gin.Context) {
	restID, ok := ctl.load(c)
	if !ok {
		return
	}
	if !ctl.authorizeOwner(c, restID) {
		return
	}
	itemID, _ := strconv.Atoi(c.Param("itemId"))

	item, found := ctl.Store.Item(restID, uint(itemID))
	if !found {
		resp.NotFound(c, "food item not found")
		return
	}

	if err := ctl.Store.DeleteItem(restID, uint(itemID)); err != nil {
		resp.ServerError(c, err)
		return
	}
	ctl.Hub.Notify(restID, ws.EventItemDeleted, &item)
	resp.OK(c, gin.H{"message": "item deleted"})
}

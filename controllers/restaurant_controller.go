package controllers

import (
	"strconv"

	"github.com/Saaaaaad3/Plattera/pkg/resp"
	"github.com/Saaaaaad3/Plattera/repository"
	"github.com/Saaaaaad3/Plattera/utils"
	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantController(repo *repository.RestaurantRepository) *RestaurantController {
	return &RestaurantController{Repo: repo}
}

// GET /restaurants
func (ctl *RestaurantController) List(c *gin.Context) {
	rests, err := ctl.Repo.FindAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rests)
}

// GET /restaurants/:id
func (ctl *RestaurantController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	rest, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}
	resp.OK(c, rest)
}

// GET /owner/restaurants
func (ctl *RestaurantController) Mine(c *gin.Context) {
	rest, err := ctl.Repo.FindByOwner(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "no restaurant for this account")
		return
	}
	resp.OK(c, rest)
}

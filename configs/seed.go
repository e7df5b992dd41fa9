package configs

import (
	"fmt"
	"log"

	"github.com/Saaaaaad3/Plattera/entity"
)

// SeedDemo creates a demo owner, restaurant and menu when the database
// is empty. The starters category deliberately holds 23 items so the
// three-page pagination flow can be walked against a fresh install.
func SeedDemo() error {
	db := DB()

	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		log.Println("demo data already present, skipping seed")
		return nil
	}

	owner := entity.User{
		MobileNumber: getEnv("DEMO_OWNER_MOBILE", "9999900001"),
		Role:         entity.RoleRestOwner.String(),
	}
	if err := db.Create(&owner).Error; err != nil {
		return err
	}

	rest := entity.Restaurant{
		Name:        "Spice Route",
		Address:     "14 MG Road, Pune",
		Description: "Home-style Indian kitchen",
		Picture:     "/images/spice-route.jpg",
		UserID:      owner.ID,
	}
	if err := db.Create(&rest).Error; err != nil {
		return err
	}

	items := []entity.MenuItem{
		{
			ItemName:        "Paneer Tikka",
			ItemPrice:       "249",
			ItemDescription: "Char-grilled cottage cheese with mint chutney",
			Category:        "starters",
			ItemIsVeg:       true,
			ItemSpicy:       true,
			ItemSpiceLevel:  3,
			ItemAvailable:   true,
			ItemBestSeller:  true,
			ItemImages:      []string{"/images/paneer-tikka-1.jpg", "/images/paneer-tikka-2.jpg"},
			Ingredients:     []string{"paneer", "yogurt", "capsicum", "spices"},
		},
		{
			ItemName:        "Dal Makhani",
			ItemPrice:       "219",
			ItemDescription: "Black lentils simmered overnight",
			Category:        "main-course",
			ItemIsVeg:       true,
			ItemAvailable:   true,
			ItemImages:      []string{"/images/dal-makhani.jpg"},
			Ingredients:     []string{"black lentils", "butter", "cream"},
		},
		{
			ItemName:        "Butter Chicken",
			ItemPrice:       "329",
			ItemDescription: "Tandoori chicken in tomato gravy",
			Category:        "main-course",
			ItemSpicy:       true,
			ItemSpiceLevel:  2,
			ItemAvailable:   true,
			ItemBestSeller:  true,
			ItemImages:      []string{"/images/butter-chicken.jpg"},
			Ingredients:     []string{"chicken", "tomato", "butter", "cream"},
		},
		{
			ItemName:        "Gulab Jamun",
			ItemPrice:       "129",
			ItemDescription: "Fried milk dumplings in rose syrup",
			Category:        "desserts",
			ItemIsVeg:       true,
			ItemSweet:       true,
			ItemSweetLevel:  5,
			ItemAvailable:   true,
			ItemImages:      []string{"/images/gulab-jamun.jpg"},
			Ingredients:     []string{"khoya", "sugar", "rose water"},
		},
	}

	// fill starters up to 23 items
	for i := 2; i <= 23; i++ {
		items = append(items, entity.MenuItem{
			ItemName:        fmt.Sprintf("Starter Special %d", i),
			ItemPrice:       fmt.Sprintf("%d", 99+i*10),
			ItemDescription: "Seasonal small plate from the tandoor",
			Category:        "starters",
			ItemIsVeg:       i%2 == 0,
			ItemAvailable:   true,
			ItemImages:      []string{fmt.Sprintf("/images/starter-%d.jpg", i)},
		})
	}

	for i := range items {
		items[i].ItemNumber = uint(i + 1)
		items[i].RestaurantID = rest.ID
		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("seeded demo restaurant %q with %d items", rest.Name, len(items))
	return nil
}

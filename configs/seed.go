package configs

import (
	"log"

	"github.com/bayoffindiaofficial/bengal-biz-finder/entity"
	"golang.org/x/crypto/bcrypt"
)

// First-run admin account from env.
func SeedAdmin() error {
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedDemoBusinesses loads the sample directory used for local development.
// Runs only when SEED_DEMO=true and the table is empty.
func SeedDemoBusinesses() error {
	var count int64
	db.Model(&entity.Business{}).Count(&count)
	if count > 0 {
		return nil
	}

	demo := []entity.Business{
		{
			Name:          "Kolkata Tech Solutions",
			Type:          "Electronics",
			Services:      "Computer repair, Software installation, Networking",
			PriceRange:    "₹₹",
			Phone:         "+91 9876543210",
			Email:         "info@kolkatatech.com",
			Website:       "www.kolkatatech.com",
			Address:       "121, Park Street, Kolkata",
			District:      "Kolkata",
			Area:          "Park Street",
			BusinessHours: "Mon-Sat: 10:00 AM - 8:00 PM",
		},
		{
			Name:          "Sunshine Restaurant",
			Type:          "Restaurant",
			Services:      "Bengali cuisine, Chinese food, North Indian food",
			PriceRange:    "₹₹₹",
			Phone:         "+91 9876543211",
			Email:         "contact@sunshine.com",
			Address:       "45, Salt Lake, Sector 5",
			District:      "North 24 Parganas",
			Area:          "Salt Lake",
			BusinessHours: "Daily: 11:00 AM - 11:00 PM",
			Photos: []entity.BusinessPhoto{
				{URL: "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?q=80&w=2070&auto=format&fit=crop"},
			},
		},
		{
			Name:          "Siliguri Medical Center",
			Type:          "Hospital",
			Services:      "General medicine, Surgery, Pediatrics, Gynecology",
			PriceRange:    "₹₹₹",
			Phone:         "+91 9876543212",
			Email:         "appointment@siligurimedical.com",
			Website:       "www.siligurimedical.com",
			Address:       "78, Hill Cart Road, Siliguri",
			District:      "Darjeeling",
			Area:          "Siliguri",
			BusinessHours: "24/7",
			Photos: []entity.BusinessPhoto{
				{URL: "https://images.unsplash.com/photo-1519494026892-80bbd2d6fd0d?q=80&w=2053&auto=format&fit=crop"},
			},
		},
		{
			Name:          "Durgapur Home Services",
			Type:          "Electrician",
			Services:      "Electrical repairs, Wiring, Installation",
			PriceRange:    "₹",
			Phone:         "+91 9876543213",
			Email:         "support@durgapurhome.com",
			Address:       "13, City Center, Durgapur",
			District:      "Paschim Bardhaman",
			Area:          "City Center",
			BusinessHours: "Mon-Sun: 8:00 AM - 9:00 PM",
		},
		{
			Name:          "Malda Garments",
			Type:          "Clothing Store",
			Services:      "Traditional Bengali wear, Western clothing, Kids wear",
			PriceRange:    "₹₹",
			Phone:         "+91 9876543214",
			Email:         "info@maldagarments.com",
			Address:       "29, Main Road, English Bazar",
			District:      "Malda",
			Area:          "English Bazar",
			BusinessHours: "Mon-Sat: 10:30 AM - 8:30 PM",
			Photos: []entity.BusinessPhoto{
				{URL: "https://images.unsplash.com/photo-1567401893414-76b7b1e5a7a5?q=80&w=2070&auto=format&fit=crop"},
			},
		},
		{
			Name:          "Howrah Legal Services",
			Type:          "Lawyer",
			Services:      "Property law, Family law, Civil cases",
			PriceRange:    "₹₹₹",
			Phone:         "+91 9876543215",
			Email:         "consult@howrahlegal.com",
			Website:       "www.howrahlegal.com",
			Address:       "56, Howrah Maidan, Howrah",
			District:      "Howrah",
			Area:          "Howrah Maidan",
			BusinessHours: "Mon-Fri: 10:00 AM - 6:00 PM",
		},
	}

	return db.Create(&demo).Error
}

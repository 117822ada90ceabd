package database

import (
	"fmt"

	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed mengisi data awal: admin default, lokasi, restoran, dan layout meja.
// Idempotent: tidak menulis ulang kalau tabel sudah terisi.
func Seed(db *gorm.DB) error {
	if err := seedAdmins(db); err != nil {
		return err
	}
	return seedRestaurants(db)
}

func seedAdmins(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.AdminUser{
		Email:        "admin@admin.com",
		PasswordHash: string(hash),
		Role:         models.RoleSuperAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("Seeded default admin %s", admin.Email)
	return nil
}

type restaurantSeed struct {
	Name     string
	Location string
	Address  string
	Phone    string
}

type tableSeed struct {
	Name      string
	Capacity  int
	PositionX int
	PositionY int
	Width     int
	Height    int
	Shape     string
	Zone      string
}

func seedRestaurants(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Location{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	locationNames := []string{
		"Sahil", "Icherisheher", "Yasamal", "Nasimi",
		"Narimanov", "Sabail", "Khatai", "Ahmadli",
		"28 May", "Elmler Akademiyasi", "Genclik", "Fountain Square",
		"Nizami", "Boulevard",
	}

	return db.Transaction(func(tx *gorm.DB) error {
		locIDs := make(map[string]uint, len(locationNames))
		for _, name := range locationNames {
			loc := models.Location{Name: name}
			if err := tx.Create(&loc).Error; err != nil {
				return err
			}
			locIDs[name] = loc.ID
		}

		restaurants := []restaurantSeed{
			{"Firuze Restaurant — Fountain Square", "Fountain Square", "Nizami St 15, Fountain Square", "+994-12-404-8585"},
			{"Firuze Restaurant — Sahil", "Sahil", "Neftchilar Ave 24, Sahil", "+994-12-404-8586"},
			{"Dolma Restaurant — Fountain Square", "Fountain Square", "Boyuk Gala St 19, Fountain Square", "+994-12-492-5151"},
			{"Dolma Restaurant — Sahil", "Sahil", "Neftchilar Ave 91, Sahil", "+994-12-492-5152"},
			{"Caravan Baku — Fountain Square", "Fountain Square", "Istiglaliyyat St 18, Baku", "+994-12-505-7676"},
			{"Caravan Baku — Nizami", "Nizami", "Nizami St 88, Baku", "+994-12-505-7677"},
			{"Mari Vanna — Sahil", "Sahil", "Neftchilar Ave 105, Sahil", "+994-12-437-3737"},
			{"SAHiL Bar & Restaurant — Sahil", "Sahil", "Neftchilar Ave 2, Sahil", "+994-12-498-2020"},
			{"SAHiL Bar & Restaurant — Boulevard", "Boulevard", "National Park Seaside Blvd, Baku", "+994-12-498-2021"},
			{"Anadolu Restaurant — 28 May", "28 May", "28 May St 32, Baku", "+994-12-440-1010"},
			{"Anadolu Restaurant — Nasimi", "Nasimi", "Tbilisi Ave 55, Nasimi", "+994-12-440-1011"},
			{"Matbakh Restaurant — 28 May", "28 May", "Ahmad Javad St 12, Baku", "+994-12-598-1818"},
			{"Marani Restaurant — 28 May", "28 May", "Rashid Behbudov St 7, Baku", "+994-12-437-5050"},
			{"Sumakh Restaurant — Narimanov", "Narimanov", "Fatali Khan Khoyski 90, Baku", "+994-12-465-1212"},
			{"Megobari Restaurant — Sahil", "Sahil", "Neftchilar Ave 50, Sahil", "+994-12-437-0077"},
			{"Shirvanshah Museum Restaurant", "Icherisheher", "Boyuk Gala St 86, Old City", "+994-12-492-1020"},
			{"Fisincan Restaurant", "Icherisheher", "Kichik Gala St 8, Old City", "+994-12-492-3030"},
			{"Nakhchivan Restaurant", "Narimanov", "Tabriz Chalabi St 6, Baku", "+994-12-465-4040"},
			{"Chinar Restaurant", "Fountain Square", "Nizami St 35, Fountain Square", "+994-12-498-6060"},
			{"Scalini Italian Restaurant", "Genclik", "Heydar Aliyev Ave 65, Baku", "+994-12-465-9090"},
			{"Zafferano Restaurant", "Narimanov", "Ataturk Ave 15, Baku", "+994-12-465-7070"},
			{"Art Club Restaurant", "Icherisheher", "Asaf Zeynalli St 11, Old City", "+994-12-492-4040"},
			{"Qaynana Restaurant — Yasamal", "Yasamal", "Murtuza Mukhtarov 110, Baku", "+994-12-440-5050"},
			{"Sehrli Tendir — Yasamal", "Yasamal", "Sharifzade St 44, Baku", "+994-12-440-6060"},
			{"Baku Cafe — Ahmadli", "Ahmadli", "Ziya Bunyadov Ave 34, Baku", "+994-12-455-1010"},
			{"Mangal Steak House — Genclik", "Genclik", "Heydar Aliyev Ave 52, Baku", "+994-12-465-8080"},
		}

		for i, seed := range restaurants {
			locID, ok := locIDs[seed.Location]
			if !ok {
				return fmt.Errorf("seed: unknown location %q", seed.Location)
			}
			rest := models.Restaurant{
				Name:       seed.Name,
				LocationID: locID,
				Address:    seed.Address,
				Phone:      seed.Phone,
			}
			if err := tx.Create(&rest).Error; err != nil {
				return err
			}

			layout, ok := tableLayouts[seed.Name]
			if !ok {
				layout = defaultLayout(i)
			}
			for _, t := range layout {
				table := models.Table{
					RestaurantID: rest.ID,
					Name:         t.Name,
					Capacity:     t.Capacity,
					PositionX:    t.PositionX,
					PositionY:    t.PositionY,
					Width:        t.Width,
					Height:       t.Height,
					Shape:        t.Shape,
					Zone:         t.Zone,
				}
				if err := tx.Create(&table).Error; err != nil {
					return err
				}
			}
		}

		utils.InfoLogger.Printf("Seeded %d locations and %d restaurants", len(locationNames), len(restaurants))
		return nil
	})
}

// Layout denah khusus untuk beberapa restoran; sisanya memakai defaultLayout.
var tableLayouts = map[string][]tableSeed{
	"Firuze Restaurant — Fountain Square": {
		{"Window 1", 2, 30, 30, 90, 90, "circle", "Window"},
		{"Window 2", 2, 160, 30, 90, 90, "circle", "Window"},
		{"Hall A", 4, 300, 30, 130, 80, "rect", "Center"},
		{"Hall B", 6, 470, 30, 140, 90, "rect", "Center"},
		{"Terrace 1", 2, 30, 180, 90, 90, "circle", "Terrace"},
		{"Terrace 2", 4, 160, 180, 130, 80, "rect", "Terrace"},
		{"VIP Room", 10, 340, 180, 200, 120, "rect", "VIP"},
		{"Bar 1", 2, 30, 350, 80, 80, "circle", "Bar"},
		{"Bar 2", 2, 150, 350, 80, 80, "circle", "Bar"},
	},
	"Firuze Restaurant — Sahil": {
		{"Sea View 1", 2, 30, 30, 90, 90, "circle", "Terrace"},
		{"Sea View 2", 2, 160, 30, 90, 90, "circle", "Terrace"},
		{"Sea View 3", 4, 300, 30, 130, 80, "rect", "Terrace"},
		{"Indoor 1", 4, 30, 180, 130, 80, "rect", "Center"},
		{"Indoor 2", 6, 210, 180, 150, 100, "rect", "Center"},
		{"Private", 8, 410, 180, 180, 110, "rect", "VIP"},
		{"Lounge 1", 2, 30, 350, 80, 80, "circle", "Lounge"},
		{"Lounge 2", 2, 150, 350, 80, 80, "circle", "Lounge"},
	},
	"Dolma Restaurant — Fountain Square": {
		{"Arch 1", 2, 40, 30, 80, 80, "circle", "Front"},
		{"Arch 2", 2, 160, 30, 80, 80, "circle", "Front"},
		{"Arch 3", 4, 290, 30, 130, 80, "rect", "Front"},
		{"Main 1", 6, 470, 30, 140, 90, "rect", "Center"},
		{"Main 2", 4, 40, 180, 130, 80, "rect", "Center"},
		{"VIP Dolma", 10, 400, 180, 200, 120, "rect", "VIP"},
		{"Garden 1", 2, 40, 360, 80, 80, "circle", "Garden"},
		{"Garden 2", 4, 170, 350, 120, 80, "rect", "Garden"},
	},
	"Mari Vanna — Sahil": {
		{"Samovar 1", 2, 30, 30, 90, 90, "circle", "Window"},
		{"Samovar 2", 2, 160, 30, 90, 90, "circle", "Window"},
		{"Dacha A", 4, 300, 30, 130, 80, "rect", "Front"},
		{"Dacha B", 4, 470, 30, 130, 80, "rect", "Front"},
		{"Kitchen", 6, 30, 180, 150, 100, "rect", "Center"},
		{"Parlor", 6, 230, 180, 150, 100, "rect", "Center"},
		{"Grand", 10, 430, 180, 180, 110, "rect", "VIP"},
		{"Nook 1", 2, 30, 350, 80, 80, "circle", "Corner"},
		{"Nook 2", 2, 150, 350, 80, 80, "circle", "Corner"},
	},
	"SAHiL Bar & Restaurant — Sahil": {
		{"Deck 1", 2, 30, 30, 90, 90, "circle", "Terrace"},
		{"Deck 2", 2, 160, 30, 90, 90, "circle", "Terrace"},
		{"Deck 3", 4, 300, 30, 130, 80, "rect", "Terrace"},
		{"Anchor A", 4, 470, 30, 130, 80, "rect", "Center"},
		{"Anchor B", 6, 30, 180, 150, 100, "rect", "Center"},
		{"Captain", 8, 230, 180, 180, 110, "rect", "VIP"},
		{"Bar Stool 1", 2, 460, 180, 80, 80, "circle", "Bar"},
		{"Bar Stool 2", 2, 560, 180, 80, 80, "circle", "Bar"},
	},
}

// defaultLayout memberi tiap restoran tanpa layout khusus susunan meja
// standar, sedikit digeser per indeks supaya tidak identik.
func defaultLayout(idx int) []tableSeed {
	offset := (idx % 3) * 10
	return []tableSeed{
		{"Front 1", 2, 30 + offset, 30, 90, 90, "circle", "Front"},
		{"Front 2", 2, 160 + offset, 30, 90, 90, "circle", "Front"},
		{"Center A", 4, 300 + offset, 30, 130, 80, "rect", "Center"},
		{"Center B", 4, 470 + offset, 30, 130, 80, "rect", "Center"},
		{"Center C", 6, 30 + offset, 180, 150, 100, "rect", "Center"},
		{"VIP", 8, 230 + offset, 180, 180, 110, "rect", "VIP"},
		{"Corner 1", 2, 460 + offset, 180, 80, 80, "circle", "Corner"},
	}
}

package models

// SeedDocument returns the default dataset used when no persisted
// document exists or the stored blob fails to parse. A fresh copy is
// returned each call so callers can mutate it freely.
func SeedDocument() *Document {
	return &Document{
		User: User{
			Username: "admin",
			Password: "admin123",
		},
		Customers: []Customer{
			{
				ID:           "customer_1",
				Name:         "Rajesh Kumar",
				Phone:        "9876543210",
				Address:      "Shop No. 15, Main Market",
				LastMonthDue: 500,
				CreatedAt:    "2025-01-01",
			},
			{
				ID:           "customer_2",
				Name:         "Priya Sharma",
				Phone:        "9876543211",
				Address:      "House No. 23, Gandhi Road",
				LastMonthDue: 0,
				CreatedAt:    "2025-01-02",
			},
		},
		Products: []Product{
			{ID: "milk_type_1", Name: "Buffalo Milk", Rate: 60, Unit: "liter", Category: "Milk"},
			{ID: "milk_type_2", Name: "Cow Milk", Rate: 50, Unit: "liter", Category: "Milk"},
			{ID: "paneer", Name: "Paneer", Rate: 350, Unit: "kg", Category: "Dairy"},
			{ID: "dahi", Name: "Dahi (Curd)", Rate: 40, Unit: "kg", Category: "Dairy"},
			{ID: "chach", Name: "Chach (Buttermilk)", Rate: 25, Unit: "liter", Category: "Dairy"},
			{ID: "ghee", Name: "Ghee", Rate: 500, Unit: "kg", Category: "Dairy"},
		},
		DailyEntries: []DailyEntry{
			{
				ID:         "entry_1",
				CustomerID: "customer_1",
				ProductID:  "milk_type_1",
				Date:       "2025-01-15",
				Quantity:   2,
				Rate:       60,
				Amount:     120,
			},
			{
				ID:         "entry_2",
				CustomerID: "customer_1",
				ProductID:  "dahi",
				Date:       "2025-01-15",
				Quantity:   1,
				Rate:       40,
				Amount:     40,
			},
		},
		MonthlyBills: []MonthlyBill{},
	}
}

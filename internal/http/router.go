package http

import (
	"dairy-backend/internal/handlers"
	"dairy-backend/internal/middleware"

	"github.com/gorilla/mux"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	customerHandler *handlers.CustomerHandler,
	productHandler *handlers.ProductHandler,
	entryHandler *handlers.EntryHandler,
	billHandler *handlers.BillHandler,
	snapshotHandler *handlers.SnapshotHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware)

	// Public routes
	r.HandleFunc("/", healthHandler.Index).Methods("GET")
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected API
	api := r.PathPrefix("/api").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("/auth/change-password", authHandler.ChangePassword).Methods("POST")

	// Customers
	api.HandleFunc("/customers", customerHandler.ListCustomers).Methods("GET")
	api.HandleFunc("/customers", customerHandler.CreateCustomer).Methods("POST")
	api.HandleFunc("/customers/import", customerHandler.ImportCSV).Methods("POST")
	api.HandleFunc("/customers/template.csv", customerHandler.CSVTemplate).Methods("GET")
	api.HandleFunc("/customers/{id}", customerHandler.GetCustomer).Methods("GET")
	api.HandleFunc("/customers/{id}", customerHandler.UpdateCustomer).Methods("PUT", "PATCH")
	api.HandleFunc("/customers/{id}", customerHandler.DeleteCustomer).Methods("DELETE")

	// Products
	api.HandleFunc("/products", productHandler.ListProducts).Methods("GET")
	api.HandleFunc("/products", productHandler.CreateProduct).Methods("POST")
	api.HandleFunc("/products/{id}", productHandler.GetProduct).Methods("GET")
	api.HandleFunc("/products/{id}", productHandler.UpdateProduct).Methods("PUT", "PATCH")
	api.HandleFunc("/products/{id}", productHandler.DeleteProduct).Methods("DELETE")

	// Daily entries
	api.HandleFunc("/entries", entryHandler.ListEntries).Methods("GET")
	api.HandleFunc("/entries", entryHandler.CreateEntry).Methods("POST")
	api.HandleFunc("/entries/replace-date", entryHandler.ReplaceDate).Methods("POST")
	api.HandleFunc("/entries/copy-yesterday", entryHandler.CopyYesterday).Methods("POST")
	api.HandleFunc("/entries/{id}", entryHandler.UpdateEntry).Methods("PUT", "PATCH")
	api.HandleFunc("/entries/{id}", entryHandler.DeleteEntry).Methods("DELETE")

	// Monthly bills
	api.HandleFunc("/bills", billHandler.ListBills).Methods("GET")
	api.HandleFunc("/bills", billHandler.ClearAllBills).Methods("DELETE")
	api.HandleFunc("/bills/generate", billHandler.Generate).Methods("POST")
	api.HandleFunc("/bills/month/{year}/{month}/pdf", billHandler.MonthBatchPDF).Methods("GET")
	api.HandleFunc("/bills/{id}", billHandler.GetBill).Methods("GET")
	api.HandleFunc("/bills/{id}", billHandler.DeleteBill).Methods("DELETE")
	api.HandleFunc("/bills/{id}/pdf", billHandler.BillPDF).Methods("GET")
	api.HandleFunc("/bills/{id}/qr", billHandler.PaymentQR).Methods("GET")
	api.HandleFunc("/bills/{id}/payment-link", billHandler.PaymentLink).Methods("POST")

	// Snapshot export/import and backups
	api.HandleFunc("/snapshot", snapshotHandler.Export).Methods("GET")
	api.HandleFunc("/snapshot", snapshotHandler.Import).Methods("POST")
	api.HandleFunc("/backup/run", snapshotHandler.RunBackup).Methods("POST")

	return r
}

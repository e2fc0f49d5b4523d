package ledger

import (
	"bytes"
	"context"
	"testing"

	"dairy-backend/internal/models"
	"dairy-backend/internal/store"
)

// newEmptyService builds a service over an in-memory backend primed
// with an empty document, so tests start from a clean ledger instead
// of the seed data.
func newEmptyService(t *testing.T) *Service {
	t.Helper()
	storage := store.NewMemoryStorage()
	blob := []byte(`{"user":{"username":"admin","password":"admin123"},"customers":[],"products":[],"dailyEntries":[],"monthlyBills":[]}`)
	if err := storage.Save(context.Background(), blob); err != nil {
		t.Fatalf("prime storage: %v", err)
	}
	svc, err := NewService(context.Background(), storage)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc
}

func addCustomer(t *testing.T, svc *Service, name string, due float64) *models.Customer {
	t.Helper()
	c, err := svc.AddCustomer(context.Background(), &models.CreateCustomerRequest{
		Name:         name,
		LastMonthDue: due,
	})
	if err != nil {
		t.Fatalf("AddCustomer failed: %v", err)
	}
	return c
}

func addEntry(t *testing.T, svc *Service, customerID, productID, date string, qty, rate float64) *models.DailyEntry {
	t.Helper()
	e, err := svc.AddDailyEntry(context.Background(), &models.CreateDailyEntryRequest{
		CustomerID: customerID,
		ProductID:  productID,
		Date:       date,
		Quantity:   qty,
		Rate:       rate,
	})
	if err != nil {
		t.Fatalf("AddDailyEntry failed: %v", err)
	}
	return e
}

func TestNewServiceFallsBackToSeedWhenEmpty(t *testing.T) {
	svc, err := NewService(context.Background(), store.NewMemoryStorage())
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	if len(svc.ListProducts()) == 0 {
		t.Error("seed document should carry the default product catalog")
	}
	if !svc.Authenticate("admin", "admin123") {
		t.Error("seed credentials should authenticate")
	}
}

func TestNewServiceFallsBackToSeedOnCorruptBlob(t *testing.T) {
	storage := store.NewMemoryStorage()
	if err := storage.Save(context.Background(), []byte("{not json")); err != nil {
		t.Fatalf("prime storage: %v", err)
	}
	svc, err := NewService(context.Background(), storage)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	if len(svc.ListCustomers()) != 2 {
		t.Errorf("expected 2 seed customers, got %d", len(svc.ListCustomers()))
	}
}

func TestAmountDerivedOnCreate(t *testing.T) {
	svc := newEmptyService(t)
	e := addEntry(t, svc, "c1", "p1", "2025-03-10", 2.5, 60)
	if e.Amount != 150 {
		t.Errorf("amount = %v, want 150", e.Amount)
	}
}

func TestAmountRecomputedOnUpdate(t *testing.T) {
	svc := newEmptyService(t)
	e := addEntry(t, svc, "c1", "p1", "2025-03-10", 2, 60)

	qty := 3.0
	updated, err := svc.UpdateDailyEntry(context.Background(), e.ID, &models.DailyEntryPatch{Quantity: &qty})
	if err != nil {
		t.Fatalf("UpdateDailyEntry failed: %v", err)
	}
	if updated.Amount != 180 {
		t.Errorf("amount after quantity change = %v, want 180", updated.Amount)
	}

	rate := 50.0
	updated, err = svc.UpdateDailyEntry(context.Background(), e.ID, &models.DailyEntryPatch{Rate: &rate})
	if err != nil {
		t.Fatalf("UpdateDailyEntry failed: %v", err)
	}
	if updated.Amount != 150 {
		t.Errorf("amount after rate change = %v, want 150", updated.Amount)
	}
}

func TestUpdateWithEmptyPatchLeavesRecordUnchanged(t *testing.T) {
	svc := newEmptyService(t)
	phone := "9000000001"
	c := addCustomer(t, svc, "Mohan", 120)
	if _, err := svc.UpdateCustomer(context.Background(), c.ID, &models.CustomerPatch{Phone: &phone}); err != nil {
		t.Fatalf("UpdateCustomer failed: %v", err)
	}

	updated, err := svc.UpdateCustomer(context.Background(), c.ID, &models.CustomerPatch{})
	if err != nil {
		t.Fatalf("UpdateCustomer with empty patch failed: %v", err)
	}
	if updated.Name != "Mohan" || updated.Phone != "9000000001" || updated.LastMonthDue != 120 {
		t.Errorf("empty patch changed the record: %+v", updated)
	}
	if updated.CreatedAt != c.CreatedAt {
		t.Errorf("empty patch changed createdAt: %q -> %q", c.CreatedAt, updated.CreatedAt)
	}
}

func TestUpdateUnknownCustomerReturnsNotFound(t *testing.T) {
	svc := newEmptyService(t)
	addCustomer(t, svc, "Mohan", 0)

	name := "x"
	_, err := svc.UpdateCustomer(context.Background(), "nonexistent", &models.CustomerPatch{Name: &name})
	if err != ErrCustomerNotFound {
		t.Fatalf("err = %v, want ErrCustomerNotFound", err)
	}
	if len(svc.ListCustomers()) != 1 {
		t.Error("unknown-id update must leave the collection unchanged")
	}
}

func TestDeleteUnknownIDsReportNotRemoved(t *testing.T) {
	svc := newEmptyService(t)
	addCustomer(t, svc, "Mohan", 0)

	removed, err := svc.DeleteCustomer(context.Background(), "nonexistent")
	if err != nil {
		t.Fatalf("DeleteCustomer failed: %v", err)
	}
	if removed {
		t.Error("deleting an unknown customer must report false")
	}
	if removed, _ := svc.DeleteDailyEntry(context.Background(), "nonexistent"); removed {
		t.Error("deleting an unknown entry must report false")
	}
	if removed, _ := svc.DeleteProduct(context.Background(), "nonexistent"); removed {
		t.Error("deleting an unknown product must report false")
	}
	if len(svc.ListCustomers()) != 1 {
		t.Error("unknown-id delete must leave the collection unchanged")
	}
}

func TestDeleteCustomerCascadesOwnEntriesOnly(t *testing.T) {
	svc := newEmptyService(t)
	c1 := addCustomer(t, svc, "Mohan", 0)
	c2 := addCustomer(t, svc, "Sita", 0)
	addEntry(t, svc, c1.ID, "milk", "2025-03-01", 1, 60)
	addEntry(t, svc, c1.ID, "curd", "2025-03-02", 1, 40)
	keep := addEntry(t, svc, c2.ID, "milk", "2025-03-01", 2, 60)

	removed, err := svc.DeleteCustomer(context.Background(), c1.ID)
	if err != nil || !removed {
		t.Fatalf("DeleteCustomer = (%v, %v), want (true, nil)", removed, err)
	}

	entries := svc.ListDailyEntries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 surviving entry, got %d", len(entries))
	}
	if entries[0].ID != keep.ID {
		t.Errorf("wrong entry survived: %s", entries[0].ID)
	}
}

func TestDeleteProductCascadesOwnEntriesOnly(t *testing.T) {
	svc := newEmptyService(t)
	p, err := svc.AddProduct(context.Background(), &models.CreateProductRequest{Name: "Milk", Rate: 60, Unit: "liter"})
	if err != nil {
		t.Fatalf("AddProduct failed: %v", err)
	}
	addEntry(t, svc, "c1", p.ID, "2025-03-01", 1, 60)
	keep := addEntry(t, svc, "c1", "other_product", "2025-03-01", 1, 40)

	removed, err := svc.DeleteProduct(context.Background(), p.ID)
	if err != nil || !removed {
		t.Fatalf("DeleteProduct = (%v, %v), want (true, nil)", removed, err)
	}

	entries := svc.ListDailyEntries()
	if len(entries) != 1 || entries[0].ID != keep.ID {
		t.Fatalf("cascade removed the wrong entries: %+v", entries)
	}
}

func TestEntriesForDateAndCustomerAreFilteredViews(t *testing.T) {
	svc := newEmptyService(t)
	addEntry(t, svc, "c1", "p1", "2025-03-01", 1, 60)
	addEntry(t, svc, "c1", "p2", "2025-03-02", 1, 40)
	addEntry(t, svc, "c2", "p1", "2025-03-01", 2, 60)

	if got := len(svc.EntriesForDate("2025-03-01")); got != 2 {
		t.Errorf("EntriesForDate returned %d entries, want 2", got)
	}
	if got := len(svc.EntriesForCustomer("c1")); got != 2 {
		t.Errorf("EntriesForCustomer returned %d entries, want 2", got)
	}
	if got := len(svc.EntriesForDate("2025-04-01")); got != 0 {
		t.Errorf("EntriesForDate for an empty day returned %d entries", got)
	}
}

func TestReplaceEntriesForDate(t *testing.T) {
	svc := newEmptyService(t)
	addEntry(t, svc, "c1", "p1", "2025-03-01", 1, 60)
	addEntry(t, svc, "c2", "p1", "2025-03-01", 2, 60)
	other := addEntry(t, svc, "c1", "p1", "2025-03-02", 1, 60)

	added, err := svc.ReplaceEntriesForDate(context.Background(), "2025-03-01", []models.CreateDailyEntryRequest{
		{CustomerID: "c1", ProductID: "p1", Quantity: 5, Rate: 60},
	})
	if err != nil {
		t.Fatalf("ReplaceEntriesForDate failed: %v", err)
	}
	if len(added) != 1 || added[0].Amount != 300 {
		t.Fatalf("unexpected replacement set: %+v", added)
	}

	day := svc.EntriesForDate("2025-03-01")
	if len(day) != 1 || day[0].Quantity != 5 {
		t.Fatalf("date not wholly replaced: %+v", day)
	}
	if got := svc.EntriesForDate("2025-03-02"); len(got) != 1 || got[0].ID != other.ID {
		t.Error("entries on other dates must be untouched")
	}
}

func TestCopyYesterdayClonesPreviousDay(t *testing.T) {
	svc := newEmptyService(t)
	addEntry(t, svc, "c1", "p1", "2025-03-01", 2, 60)
	addEntry(t, svc, "c2", "p2", "2025-03-01", 1, 40)
	addEntry(t, svc, "c1", "p1", "2025-02-28", 9, 60) // not yesterday

	copied, err := svc.CopyYesterday(context.Background(), "2025-03-02")
	if err != nil {
		t.Fatalf("CopyYesterday failed: %v", err)
	}
	if len(copied) != 2 {
		t.Fatalf("copied %d entries, want 2", len(copied))
	}
	for _, e := range copied {
		if e.Date != "2025-03-02" {
			t.Errorf("copied entry has date %s, want 2025-03-02", e.Date)
		}
	}
	if got := len(svc.EntriesForDate("2025-03-02")); got != 2 {
		t.Errorf("target day has %d entries, want 2", got)
	}
}

func TestCopyYesterdayWithEmptySourceCopiesNothing(t *testing.T) {
	svc := newEmptyService(t)
	copied, err := svc.CopyYesterday(context.Background(), "2025-03-02")
	if err != nil {
		t.Fatalf("CopyYesterday failed: %v", err)
	}
	if len(copied) != 0 {
		t.Errorf("copied %d entries from an empty day", len(copied))
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	svc := newEmptyService(t)
	c := addCustomer(t, svc, "Mohan", 250)
	addEntry(t, svc, c.ID, "p1", "2025-03-01", 2, 60)

	exported, err := svc.ExportSnapshot()
	if err != nil {
		t.Fatalf("ExportSnapshot failed: %v", err)
	}
	if err := svc.ImportSnapshot(context.Background(), exported); err != nil {
		t.Fatalf("ImportSnapshot failed: %v", err)
	}
	again, err := svc.ExportSnapshot()
	if err != nil {
		t.Fatalf("second ExportSnapshot failed: %v", err)
	}
	if !bytes.Equal(exported, again) {
		t.Error("import(export()) must yield an identical document")
	}
}

func TestSnapshotRoundTripEmptyDocument(t *testing.T) {
	svc := newEmptyService(t)
	exported, err := svc.ExportSnapshot()
	if err != nil {
		t.Fatalf("ExportSnapshot failed: %v", err)
	}
	if err := svc.ImportSnapshot(context.Background(), exported); err != nil {
		t.Fatalf("ImportSnapshot failed: %v", err)
	}
	again, _ := svc.ExportSnapshot()
	if !bytes.Equal(exported, again) {
		t.Error("empty document must round-trip unchanged")
	}
}

func TestImportRejectsGarbageAndKeepsState(t *testing.T) {
	svc := newEmptyService(t)
	addCustomer(t, svc, "Mohan", 0)

	if err := svc.ImportSnapshot(context.Background(), []byte("definitely not json")); err == nil {
		t.Fatal("importing garbage must fail")
	}
	if len(svc.ListCustomers()) != 1 {
		t.Error("failed import must leave current state untouched")
	}
}

func TestAuthenticateAcceptsPlaintextAndBcrypt(t *testing.T) {
	svc := newEmptyService(t)
	if !svc.Authenticate("admin", "admin123") {
		t.Error("plaintext stored password should authenticate")
	}
	if svc.Authenticate("admin", "wrong") {
		t.Error("wrong password must not authenticate")
	}
	if svc.Authenticate("someone", "admin123") {
		t.Error("wrong username must not authenticate")
	}

	if err := svc.ChangePassword(context.Background(), "newpass"); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}
	if !svc.Authenticate("admin", "newpass") {
		t.Error("new password should authenticate after change")
	}
	if svc.Authenticate("admin", "admin123") {
		t.Error("old password must not authenticate after change")
	}
}

func TestListReturnsSnapshotCopies(t *testing.T) {
	svc := newEmptyService(t)
	addCustomer(t, svc, "Mohan", 0)

	list := svc.ListCustomers()
	list[0].Name = "mutated"

	if svc.ListCustomers()[0].Name != "Mohan" {
		t.Error("mutating a returned snapshot must not affect stored state")
	}
}

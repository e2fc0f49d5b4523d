package handlers

import (
	"fmt"
	"io"
	"net/http"

	"dairy-backend/internal/ledger"
	"dairy-backend/internal/services"
	"dairy-backend/internal/timeutil"
	"dairy-backend/pkg/utils"
)

type SnapshotHandler struct {
	Ledger *ledger.Service
	Backup *services.BackupService
}

func NewSnapshotHandler(ledgerService *ledger.Service, backupService *services.BackupService) *SnapshotHandler {
	return &SnapshotHandler{Ledger: ledgerService, Backup: backupService}
}

// Export serves the full document as a downloadable JSON snapshot.
func (h *SnapshotHandler) Export(w http.ResponseWriter, r *http.Request) {
	blob, err := h.Ledger.ExportSnapshot()
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="dairy_backup_%s.json"`, timeutil.Today()))
	w.Write(blob)
}

// Import replaces the whole document with the posted snapshot. A body
// that does not parse is rejected and current state is untouched.
func (h *SnapshotHandler) Import(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := h.Ledger.ImportSnapshot(r.Context(), raw); err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "imported"})
}

// RunBackup triggers a snapshot upload to R2 immediately.
func (h *SnapshotHandler) RunBackup(w http.ResponseWriter, r *http.Request) {
	if h.Backup == nil {
		utils.Error(w, http.StatusUnprocessableEntity, "Backup is not configured")
		return
	}

	key, err := h.Backup.Run(r.Context())
	if err != nil {
		utils.Error(w, http.StatusBadGateway, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "uploaded", "key": key})
}

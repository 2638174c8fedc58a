package handlers

import (
	"io"
	"net/http"
)

// The import body is bounded; a legitimate backup is at most a profile plus
// 100 history entries of inline images.
const maxBackupBytes = 256 << 20

// BackupExport streams the full state as a downloadable JSON document.
func (a *App) BackupExport(w http.ResponseWriter, r *http.Request) {
	data, err := a.Backup.Export(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="brandstudio-backup.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// BackupImport restores state from an exported document.
func (a *App) BackupImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBackupBytes))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "unreadable body")
		return
	}
	envelope, err := a.Backup.Import(r.Context(), data)
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, envelope)
}

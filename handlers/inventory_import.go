package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ledquote/services"
	"ledquote/templates"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// HandleInventoryImport parses an uploaded CSV or xlsx catalog and saves
// its valid rows under one import batch.
// Route: POST /inventory/import
func HandleInventoryImport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		// Parse multipart form (max 10MB)
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "File too large or invalid form data")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Please select a file to upload")
		}
		defer file.Close()

		result, err := services.ParseCatalogFile(file, header.Filename)
		if err != nil {
			log.Printf("inventory_import: %v", err)
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		imported, err := services.ImportCatalogItems(app, result)
		if err != nil {
			log.Printf("inventory_import: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Import failed. No items were saved.")
		}

		var errorsJSON string
		if len(result.Errors) > 0 {
			b, err := json.Marshal(result.Errors)
			if err != nil {
				log.Printf("inventory_import: marshal errors: %v", err)
			} else {
				errorsJSON = string(b)
			}
		}

		log.Printf("inventory_import: batch %s from %s: %d imported, %d rejected\n",
			result.BatchID, result.FileName, imported, result.ErrorRows)

		switch {
		case imported > 0 && result.ErrorRows == 0:
			SetToast(e, ToastSuccess, fmt.Sprintf("Imported %d items", imported))
		case imported > 0:
			SetToast(e, ToastWarning, fmt.Sprintf("Imported %d items, %d rows had errors", imported, result.ErrorRows))
		default:
			SetToast(e, ToastError, "No valid rows found")
		}
		return templates.ImportResultContent(result, imported, errorsJSON).Render(e.Request.Context(), e.Response)
	}
}

// HandleInventoryImportTemplate downloads a blank catalog sheet with the
// expected headers.
// Route: GET /inventory/import/template
func HandleInventoryImportTemplate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		xlsxBytes, err := services.GenerateImportTemplate()
		if err != nil {
			log.Printf("inventory_template: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate template")
		}

		filename := fmt.Sprintf("Catalog_Template_%d.xlsx", time.Now().Year())
		e.Response.Header().Set("Content-Type", xlsxContentType)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleInventoryImportErrors downloads the row errors of an import as a
// spreadsheet.
// Route: POST /inventory/import/errors
func HandleInventoryImportErrors(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		var errors []services.ValidationError
		if err := json.Unmarshal([]byte(e.Request.FormValue("errors_json")), &errors); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid error data")
		}

		xlsxBytes, err := services.GenerateErrorReport(errors)
		if err != nil {
			log.Printf("inventory_import_errors: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		filename := fmt.Sprintf("Catalog_Errors_%s.xlsx", time.Now().Format("2006-01-02"))
		e.Response.Header().Set("Content-Type", xlsxContentType)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

package model

import (
	"path/filepath"
	"strings"
	"time"
)

// FileUpload is a raw uploaded file before processing
type FileUpload struct {
	Name    string `json:"name"`
	Size    int64  `json:"size"`
	Content []byte `json:"-"` // Raw bytes, may be empty for simulated intake
}

// Document is one processed uploaded file
type Document struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Type          DocumentType `json:"type"`
	Size          int64        `json:"size"`
	UploadedAt    time.Time    `json:"uploaded_at"`
	Processed     bool         `json:"processed"`
	ExtractedText string       `json:"extracted_text,omitempty"`
	Confidence    float64      `json:"confidence,omitempty"` // [0,1], 0 when extraction failed
}

// DocumentType classifies the upload by filename extension
type DocumentType string

const (
	DocumentTypePDF   DocumentType = "pdf"
	DocumentTypeImage DocumentType = "image"
	DocumentTypeText  DocumentType = "text"
)

// DocumentTypeFor derives the document type from a filename.
// Unknown extensions fall back to text.
func DocumentTypeFor(filename string) DocumentType {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "pdf":
		return DocumentTypePDF
	case "jpg", "jpeg", "png", "gif":
		return DocumentTypeImage
	default:
		return DocumentTypeText
	}
}

// ExtractedInfo is the bag of structured facts merged from every document's
// extracted text. All fields are optional; later documents overwrite earlier
// values for the same field group.
type ExtractedInfo struct {
	IncidentDate string       `json:"incident_date,omitempty"`
	Location     string       `json:"location,omitempty"`
	Description  string       `json:"description,omitempty"`
	Damages      []string     `json:"damages,omitempty"`
	Witnesses    []string     `json:"witnesses,omitempty"`
	MedicalInfo  *MedicalInfo `json:"medical_info,omitempty"`
	VehicleInfo  *VehicleInfo `json:"vehicle_info,omitempty"`
}

// MedicalInfo holds facts extracted from medical documents
type MedicalInfo struct {
	Diagnosis     string `json:"diagnosis,omitempty"`
	Provider      string `json:"provider,omitempty"`
	TreatmentDate string `json:"treatment_date,omitempty"`
}

// VehicleInfo holds facts extracted from vehicle-related documents
type VehicleInfo struct {
	Make  string `json:"make,omitempty"`
	Model string `json:"model,omitempty"`
	Year  int    `json:"year,omitempty"`
	VIN   string `json:"vin,omitempty"`
}

// FieldCount returns the number of populated top-level fields. The scoring
// and routing rules key off this count, so it must match the merge semantics:
// each field group counts once regardless of how many documents contributed.
func (e ExtractedInfo) FieldCount() int {
	count := 0
	if e.IncidentDate != "" {
		count++
	}
	if e.Location != "" {
		count++
	}
	if e.Description != "" {
		count++
	}
	if len(e.Damages) > 0 {
		count++
	}
	if len(e.Witnesses) > 0 {
		count++
	}
	if e.MedicalInfo != nil {
		count++
	}
	if e.VehicleInfo != nil {
		count++
	}
	return count
}

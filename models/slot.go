// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StatusEmpty is the status text a freshly initialized slot carries before
// any upload lands in it.
const StatusEmpty = "slot is empty"

// SlotRecord describes the state of one submission slot. One record is
// persisted per slot as a JSON file and replaced atomically on every
// mutation.
type SlotRecord struct {
	// SlotNum is the slot's position within the user's slot table.
	// Redundant with the file location; used as a self-consistency check
	// when the record is loaded.
	SlotNum int `json:"slot_num"`

	// Occupied reports whether a submission has been uploaded into this
	// slot. When false, Filename and UploadedAt are cleared.
	Occupied bool `json:"occupied"`

	// Filename is the basename of the uploaded tarball, matching the
	// submit naming contract. Empty while the slot is unoccupied.
	Filename string `json:"filename,omitempty"`

	// UploadedAt is the upload time in Unix seconds. It is monotonically
	// non-decreasing across successive updates to the same slot.
	// Zero while the slot is unoccupied.
	UploadedAt int64 `json:"uploaded_at,omitempty"`

	// Status is free-form state text: StatusEmpty, "submitted",
	// administrative notes set by operator tooling, and so on.
	Status string `json:"status"`
}

// SlotTable is the complete fixed-length ordered collection of a user's
// slot records, indexed by slot number.
type SlotTable []SlotRecord

// NewEmptySlot returns the record a slot holds before any upload.
func NewEmptySlot(slotNum int) SlotRecord {
	return SlotRecord{
		SlotNum: slotNum,
		Status:  StatusEmpty,
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command setslotstatus sets the status text of one submission slot.
//
// Usage:
//
//	setslotstatus [-t topdir] username slot_num status
//
// The -t/-topdir flag repoints the storage root before any store operation
// executes. Operator-facing output goes to stdout; structured logs go to
// stderr.
//
// Exit codes:
//
//	0 — status updated
//	2 — usage error
//	3 — storage top directory unusable
//	4 — invalid or unknown username
//	5 — invalid slot number
//	6 — status update failed
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/MKhiriev/submit-keeper/internal/config"
	"github.com/MKhiriev/submit-keeper/internal/layout"
	"github.com/MKhiriev/submit-keeper/internal/logger"
	"github.com/MKhiriev/submit-keeper/internal/service"
	"github.com/MKhiriev/submit-keeper/internal/status"
	"github.com/MKhiriev/submit-keeper/internal/store"
)

const (
	exitOK = iota
	_
	exitUsage
	exitBadTopDir
	exitBadUsername
	exitBadSlotNumber
	exitUpdateFailed
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewLogger("setslotstatus")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Printf("ERROR: configuration error: <<%v>>\n", err)
		return exitUsage
	}

	args := flag.Args()
	if len(args) != 3 {
		fmt.Println("usage: setslotstatus [-t topdir] username slot_num status")
		return exitUsage
	}
	username, slotArg, statusText := args[0], args[1], args[2]

	l := layout.New(cfg.Storage)
	storages, err := store.NewStorages(l, log)
	if err != nil {
		fmt.Printf("ERROR: top directory error: <<%v>>\n", err)
		return exitBadTopDir
	}
	services := service.NewServices(storages, cfg, log)

	ctx := log.WithContext(context.Background())

	if _, err := services.AuthService.Lookup(ctx, username); err != nil {
		fmt.Printf("ERROR: invalid username: %s\n", username)
		fmt.Printf("ERROR: last_errmsg: <<%s>>\n", status.LastError())
		return exitBadUsername
	}

	slotNum, err := strconv.Atoi(slotArg)
	if err != nil {
		fmt.Printf("ERROR: slot number is not a number: %s\n", slotArg)
		fmt.Printf("Notice: slot numbers must be between 0 and %d\n", l.MaxSubmitSlot())
		return exitBadSlotNumber
	}
	if _, err := services.SubmitService.SlotFilePath(username, slotNum); err != nil {
		fmt.Printf("ERROR: invalid slot number: %d for username: %s\n", slotNum, username)
		fmt.Printf("Notice: slot numbers must be between 0 and %d\n", l.MaxSubmitSlot())
		return exitBadSlotNumber
	}

	if err := services.SubmitService.UpdateSlotStatus(ctx, username, slotNum, statusText); err != nil {
		fmt.Printf("ERROR: unable to update status for username: %s slot_num: %d\n", username, slotNum)
		fmt.Printf("ERROR: last_errmsg: <<%s>>\n", status.LastError())
		return exitUpdateFailed
	}

	fmt.Printf("Notice: username: %s slot_num: %d status: <<%s>>\n", username, slotNum, statusText)
	return exitOK
}

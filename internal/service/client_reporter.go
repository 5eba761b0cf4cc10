package service

import "github.com/MKhiriev/go-theme-sync/models"

// NopReporter discards every notification.
type NopReporter struct{}

func (NopReporter) Start(models.Operation, string)           {}
func (NopReporter) Result(models.SyncResult)                 {}
func (NopReporter) Warn(string, string)                      {}
func (NopReporter) Done(models.Operation, models.SyncReport) {}

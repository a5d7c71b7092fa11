// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ProxyAction is the operation discriminator of a proxy KV request.
type ProxyAction string

const (
	ProxyActionSave   ProxyAction = "save"
	ProxyActionLoad   ProxyAction = "load"
	ProxyActionDelete ProxyAction = "delete"
)

// ProxyRequest is the body accepted by the proxy KV endpoint.
type ProxyRequest struct {
	// UserID keys the stored record.
	UserID string `json:"userId" validate:"required"`

	// Action selects save, load or delete.
	Action ProxyAction `json:"action" validate:"required,oneof=save load delete"`

	// Data is the object to store. Required for save only.
	Data RemoteRecord `json:"data,omitempty"`
}

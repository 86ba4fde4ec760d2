package models

import "time"

type Flat struct {
	ID         int    `json:"id"`
	Number     string `json:"number"`
	Block      string `json:"block"`
	FloorArea  int    `json:"floorArea"`
	OwnerID    int    `json:"ownerId,omitempty"`
	OwnerName  string `json:"ownerName,omitempty"`
	TenantID   int    `json:"tenantId,omitempty"`
	TenantName string `json:"tenantName,omitempty"`
	Occupied   bool   `json:"occupied"`
}

type Tenant struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	FlatID    int       `json:"flatId,omitempty"`
	MoveIn    string    `json:"moveIn,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type TenantRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Role   string `json:"role,omitempty"`
	FlatID int    `json:"flatId,omitempty"`
}

type FlatRequest struct {
	Number    string `json:"number"`
	Block     string `json:"block"`
	FloorArea int    `json:"floorArea,omitempty"`
	OwnerID   int    `json:"ownerId,omitempty"`
}

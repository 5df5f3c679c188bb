// file: model/request.go

package model

// OpenAccountRequest defines the payload for creating a new account.
// It includes validation tags to ensure data integrity at the entry point.
type OpenAccountRequest struct {
	FullName       string      `json:"full_name" validate:"required,max=100"`
	Address        string      `json:"address" validate:"required,max=200"`
	Birthday       string      `json:"birthday" validate:"required,max=20"`
	Gender         string      `json:"gender" validate:"required,max=20"`
	AccountType    AccountType `json:"account_type" validate:"required,oneof=Savings Current"`
	InitialDeposit string      `json:"initial_deposit" validate:"required"`
	Pin            string      `json:"pin" validate:"required,len=6,numeric"`
}

package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrNoUpdatedData   = errors.New("no data to update")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation            = errors.New("error creating token")
	ErrInvalidToken             = errors.New("access token is invalid")
	ErrEmptyAuthorizationHeader = errors.New("authorization header is not provided")
	ErrInvalidCredentials       = errors.New("invalid admin credentials")
	ErrUnauthorizedWebhook      = errors.New("webhook signature mismatch")

	// * Business errors.
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderNoItems     = errors.New("order has no items")
	ErrAmountOverflow   = errors.New("amount out of range for minor units")
	ErrGatewayAuth      = errors.New("payment gateway credential acquisition failed")
	ErrGatewaySession   = errors.New("payment gateway session creation failed")
	ErrGatewayStatus    = errors.New("payment gateway status query failed")
	ErrNotificationSend = errors.New("notification dispatch failed")
)

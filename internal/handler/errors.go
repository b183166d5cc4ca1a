package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidTokenID    = "Invalid token_id parameter"

	// Gacha operation error messages
	ErrMsgInitializeFailed        = "Failed to initialize"
	ErrMsgRollFailed              = "Failed to roll character"
	ErrMsgGetCharacterFailed      = "Failed to retrieve character"
	ErrMsgGetUserCharactersFailed = "Failed to retrieve owned characters"
	ErrMsgGetTotalFailed          = "Failed to retrieve total characters"
	ErrMsgGetRollPriceFailed      = "Failed to retrieve roll price"
	ErrMsgSetRollPriceFailed      = "Failed to update roll price"
)

// Success messages for API responses
const (
	MsgInitializedSuccess     = "Gacha initialized successfully"
	MsgRollPriceUpdateSuccess = "Roll price updated successfully"
)

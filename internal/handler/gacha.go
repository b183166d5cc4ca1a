package handler

import (
	"math/big"
	"net/http"
	"strconv"

	"github.com/osse101/GachaGame_Go/internal/gacha"
	"github.com/osse101/GachaGame_Go/internal/logger"
)

// InitializeRequest represents the request to initialize the gacha contract
type InitializeRequest struct {
	AdminID   string `json:"admin_id" validate:"required,max=100"`
	RollPrice string `json:"roll_price" validate:"required,bigint"`
}

// RollRequest represents the request to roll a new character
type RollRequest struct {
	UserID string `json:"user_id" validate:"required,max=100"`
}

// SetRollPriceRequest represents the request to change the roll price
type SetRollPriceRequest struct {
	CallerID string `json:"caller_id" validate:"required,max=100"`
	Price    string `json:"price" validate:"required,bigint"`
}

// RollPriceResponse carries the roll price as a decimal string
type RollPriceResponse struct {
	Price string `json:"price"`
}

// TotalCharactersResponse carries the total number of minted characters
type TotalCharactersResponse struct {
	Total uint64 `json:"total"`
}

// UserCharactersResponse lists an owner's token ids in mint order
type UserCharactersResponse struct {
	UserID   string   `json:"user_id"`
	TokenIDs []uint64 `json:"token_ids"`
}

// GachaHandler handles gacha-related HTTP requests
type GachaHandler struct {
	gachaSvc gacha.Service
}

// NewGachaHandler creates a new gacha handler
func NewGachaHandler(gachaSvc gacha.Service) *GachaHandler {
	return &GachaHandler{
		gachaSvc: gachaSvc,
	}
}

// Initialize handles one-time contract configuration
// @Summary Initialize the gacha
// @Description Sets the admin identity and roll price exactly once
// @Tags gacha
// @Accept json
// @Produce json
// @Param request body InitializeRequest true "Initialize request"
// @Success 200 {object} SuccessResponse "Initialized"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Already initialized"
// @Router /gacha/initialize [post]
func (h *GachaHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req InitializeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Initialize"); err != nil {
		return
	}

	// Validated by the bigint tag, SetString cannot fail here
	price, _ := new(big.Int).SetString(req.RollPrice, 10)

	if err := h.gachaSvc.Initialize(r.Context(), req.AdminID, price); err != nil {
		log.Error(ErrMsgInitializeFailed, "error", err, "admin_id", req.AdminID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgInitializedSuccess})
}

// Roll handles rolling a new character
// @Summary Roll a new character
// @Description Mints a character with derived rarity, power and name for the caller
// @Tags gacha
// @Accept json
// @Produce json
// @Param request body RollRequest true "Roll request"
// @Success 201 {object} domain.Character "Rolled character"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /gacha/roll [post]
func (h *GachaHandler) Roll(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req RollRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Roll"); err != nil {
		return
	}

	ch, err := h.gachaSvc.Roll(r.Context(), req.UserID)
	if err != nil {
		log.Error(ErrMsgRollFailed, "error", err, "user_id", req.UserID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusCreated, ch)
}

// GetCharacter handles character lookup by token id
// @Summary Get a character
// @Description Returns the character record for a token id
// @Tags gacha
// @Produce json
// @Param token_id query int true "Token id"
// @Success 200 {object} domain.Character "Character"
// @Failure 400 {object} ErrorResponse "Invalid token id"
// @Failure 404 {object} ErrorResponse "Character not found"
// @Router /gacha/character [get]
func (h *GachaHandler) GetCharacter(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	raw, ok := GetQueryParam(r, w, "token_id")
	if !ok {
		return
	}
	tokenID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		log.Warn(ErrMsgInvalidTokenID, "token_id", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidTokenID)
		return
	}

	ch, err := h.gachaSvc.GetCharacter(r.Context(), tokenID)
	if err != nil {
		log.Error(ErrMsgGetCharacterFailed, "error", err, "token_id", tokenID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}
	if ch == nil {
		respondError(w, http.StatusNotFound, ErrMsgCharacterNotFoundError)
		return
	}

	respondJSON(w, http.StatusOK, ch)
}

// GetUserCharacters handles owner collection lookup
// @Summary List a user's characters
// @Description Returns the token ids the user has rolled, in mint order
// @Tags gacha
// @Produce json
// @Param user_id query string true "User id"
// @Success 200 {object} UserCharactersResponse "Owned token ids"
// @Failure 400 {object} ErrorResponse "Missing user id"
// @Router /gacha/characters [get]
func (h *GachaHandler) GetUserCharacters(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	owned, err := h.gachaSvc.GetUserCharacters(r.Context(), userID)
	if err != nil {
		log.Error(ErrMsgGetUserCharactersFailed, "error", err, "user_id", userID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, UserCharactersResponse{
		UserID:   userID,
		TokenIDs: owned,
	})
}

// GetTotalCharacters handles the mint total lookup
// @Summary Get total characters
// @Description Returns the number of characters ever minted
// @Tags gacha
// @Produce json
// @Success 200 {object} TotalCharactersResponse "Mint total"
// @Router /gacha/total [get]
func (h *GachaHandler) GetTotalCharacters(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	total, err := h.gachaSvc.GetTotalCharacters(r.Context())
	if err != nil {
		log.Error(ErrMsgGetTotalFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, TotalCharactersResponse{Total: total})
}

// GetRollPrice handles the roll price lookup
// @Summary Get the roll price
// @Description Returns the current roll price as a decimal string
// @Tags gacha
// @Produce json
// @Success 200 {object} RollPriceResponse "Roll price"
// @Router /gacha/price [get]
func (h *GachaHandler) GetRollPrice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	price, err := h.gachaSvc.GetRollPrice(r.Context())
	if err != nil {
		log.Error(ErrMsgGetRollPriceFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, RollPriceResponse{Price: price.String()})
}

// SetRollPrice handles admin roll price updates
// @Summary Set the roll price
// @Description Updates the roll price; only the configured admin may call this
// @Tags gacha
// @Accept json
// @Produce json
// @Param request body SetRollPriceRequest true "Set price request"
// @Success 200 {object} SuccessResponse "Price updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not the admin"
// @Failure 409 {object} ErrorResponse "Not initialized"
// @Router /gacha/price [post]
func (h *GachaHandler) SetRollPrice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req SetRollPriceRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set roll price"); err != nil {
		return
	}

	price, _ := new(big.Int).SetString(req.Price, 10)

	if err := h.gachaSvc.SetRollPrice(r.Context(), req.CallerID, price); err != nil {
		log.Error(ErrMsgSetRollPriceFailed, "error", err, "caller_id", req.CallerID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRollPriceUpdateSuccess})
}

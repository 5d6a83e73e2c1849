package transport

import (
	"encoding/json"
	"net/http"

	"github.com/bekzodm/minibazar/constant"
	"github.com/bekzodm/minibazar/model"
	utilsContext "github.com/bekzodm/minibazar/utils/context"
	"github.com/bekzodm/minibazar/utils/errors"
	"github.com/bekzodm/minibazar/utils/logger"
	validatorx "github.com/bekzodm/minibazar/utils/validator"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// AdminLogin handler
// @Summary Admin PIN login
// @Description Exchange the admin PIN for a session token; three wrong PINs lock the panel for 24 hours
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.AdminLoginRequest true "Admin Login Request"
// @Success 200 {object} model.AdminLoginResponse
// @Failure 401 {object} errors.CustomError
// @Failure 423 {object} errors.CustomError
// @Router /admin/login [post]
func (s *RestHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.AdminPanelApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.AdminPanelApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminRequests handler
// @Summary List premium requests
// @Description All premium requests, most recent first
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.PremiumRequest
// @Router /admin/requests [get]
func (s *RestHandler) AdminRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.PremiumApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	writeSuccess(w, s.PremiumApp.Requests(ctx))
}

// AdminPendingCount handler
// @Summary Pending request count
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.PendingCountResponse
// @Router /admin/requests/pending-count [get]
func (s *RestHandler) AdminPendingCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.PremiumApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	writeSuccess(w, model.PendingCountResponse{Pending: s.PremiumApp.PendingCount(ctx)})
}

// AdminApprove handler
// @Summary Approve premium request
// @Description Marks the request approved, flags the shop premium and credits its listing quota
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} Response
// @Failure 400 {object} errors.CustomError
// @Router /admin/requests/{id}/approve [post]
func (s *RestHandler) AdminApprove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.PremiumApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	id := mux.Vars(r)["id"]
	if err := s.PremiumApp.Approve(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	session, _ := utilsContext.GetAdminSession(ctx)
	logger.Info("[AdminApprove] request approved",
		zap.String("request_id", id), zap.String("session", session))
	writeSuccess(w, nil)
}

// AdminReject handler
// @Summary Reject premium request
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} Response
// @Failure 400 {object} errors.CustomError
// @Router /admin/requests/{id}/reject [post]
func (s *RestHandler) AdminReject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.PremiumApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	id := mux.Vars(r)["id"]
	if err := s.PremiumApp.Reject(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	session, _ := utilsContext.GetAdminSession(ctx)
	logger.Info("[AdminReject] request rejected",
		zap.String("request_id", id), zap.String("session", session))
	writeSuccess(w, nil)
}

// AdminConfig handler
// @Summary Admin configuration
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.AdminConfig
// @Router /admin/config [get]
func (s *RestHandler) AdminConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.AdminPanelApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	cfg := s.AdminPanelApp.Config(ctx)
	cfg.PinHash = ""
	writeSuccess(w, cfg)
}

// AdminSecurity handler
// @Summary Admin security state
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.AdminSecurity
// @Router /admin/security [get]
func (s *RestHandler) AdminSecurity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.AdminPanelApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	writeSuccess(w, s.AdminPanelApp.Security(ctx))
}

// AdminSetPin handler
// @Summary Change admin PIN
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.SetPinRequest true "Set Pin Request"
// @Success 200 {object} Response
// @Router /admin/pin [put]
func (s *RestHandler) AdminSetPin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SetPinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.AdminPanelApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	s.AdminPanelApp.SetPin(ctx, req.Pin)
	writeSuccess(w, nil)
}

// AdminSetCard handler
// @Summary Update payout card
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AdminCardPatch true "Card Patch"
// @Success 200 {object} Response
// @Router /admin/card [put]
func (s *RestHandler) AdminSetCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AdminCardPatch
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.AdminPanelApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	s.AdminPanelApp.SetCard(ctx, req)
	writeSuccess(w, nil)
}

// AdminSetBot handler
// @Summary Update bot configuration
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.BotConfigPatch true "Bot Config Patch"
// @Success 200 {object} Response
// @Router /admin/bot [put]
func (s *RestHandler) AdminSetBot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.BotConfigPatch
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.AdminPanelApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	s.AdminPanelApp.SetBotConfig(ctx, req)
	writeSuccess(w, nil)
}

// AdminSetListingPrice handler
// @Summary Set listing package price
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.SetListingPriceRequest true "Set Listing Price Request"
// @Success 200 {object} Response
// @Router /admin/listing-price [put]
func (s *RestHandler) AdminSetListingPrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SetListingPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.AdminPanelApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	s.AdminPanelApp.SetListingPrice(ctx, req.Price)
	writeSuccess(w, nil)
}

// AdminSetTelegram handler
// @Summary Set admin Telegram handle
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.SetAdminTelegramRequest true "Set Admin Telegram Request"
// @Success 200 {object} Response
// @Router /admin/telegram [put]
func (s *RestHandler) AdminSetTelegram(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SetAdminTelegramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.AdminPanelApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	s.AdminPanelApp.SetAdminTelegram(ctx, req.Handle)
	writeSuccess(w, nil)
}

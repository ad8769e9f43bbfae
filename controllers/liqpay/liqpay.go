package liqpayControllers

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Orekusandoru/online-store/config"
	orderControllers "github.com/Orekusandoru/online-store/controllers/order"
	"github.com/Orekusandoru/online-store/models"
	"github.com/Orekusandoru/online-store/pkg/logger"
)

// Sign implements the LiqPay signature scheme:
// base64(sha1(privateKey + data + privateKey)).
func Sign(privateKey, data string) string {
	h := sha1.New()
	io.WriteString(h, privateKey+data+privateKey)
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// VerifySignature checks an inbound callback signature in constant time.
func VerifySignature(privateKey, data, signature string) bool {
	expected := Sign(privateKey, data)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}

// EncodePayload marshals gateway params to the base64 JSON the gateway
// expects.
func EncodePayload(params map[string]string) (string, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// ExternalOrderRef builds the gateway-side order reference.
func ExternalOrderRef(orderID uint, now time.Time) string {
	return fmt.Sprintf("%d_%d", orderID, now.UnixMilli())
}

type InitiateRequest struct {
	OrderID     uint    `json:"orderId" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
}

// POST /liqpay-initiate — returns the signed payload for the redirect-based
// checkout.
func Initiate(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req InitiateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderId and amount are required"})
			return
		}

		ref := ExternalOrderRef(req.OrderID, time.Now())

		mapping := models.LiqpayOrder{OrderID: req.OrderID, LiqpayOrderID: ref}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"liqpay_order_id"}),
		}).Create(&mapping).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register payment"})
			return
		}

		description := req.Description
		if description == "" {
			description = fmt.Sprintf("Payment for order #%d", req.OrderID)
		}

		params := map[string]string{
			"public_key":  cfg.LiqPay.PublicKey,
			"version":     "3",
			"action":      "pay",
			"amount":      strconv.FormatFloat(req.Amount, 'f', -1, 64),
			"currency":    "UAH",
			"description": description,
			"order_id":    ref,
		}

		data, err := EncodePayload(params)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build payload"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"liqpayData": data,
			"signature":  Sign(cfg.LiqPay.PrivateKey, data),
		})
	}
}

type CallbackRequest struct {
	// Polling path: the client asks for the status of an internal order.
	OrderID uint `json:"orderId"`
	// Webhook path: the gateway posts a signed payload.
	Data      string `json:"data"`
	Signature string `json:"signature"`
}

type callbackPayload struct {
	Status  string `json:"status"`
	OrderID string `json:"order_id"`
}

// POST /liqpay-callback — two paths share this endpoint: a status poll keyed
// by internal order id, and the gateway webhook carrying data + signature.
func Callback(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CallbackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if req.OrderID != 0 {
			pollStatus(c, db, cfg, req.OrderID)
			return
		}

		if req.Data == "" || req.Signature == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data or signature"})
			return
		}

		if !VerifySignature(cfg.LiqPay.PrivateKey, req.Data, req.Signature) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid signature"})
			return
		}

		raw, err := base64.StdEncoding.DecodeString(req.Data)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload encoding"})
			return
		}

		var payment callbackPayload
		if err := json.Unmarshal(raw, &payment); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
			return
		}

		if payment.Status == "success" && payment.OrderID != "" {
			var mapping models.LiqpayOrder
			err := db.Where("liqpay_order_id = ?", payment.OrderID).First(&mapping).Error
			switch {
			case err == nil:
				if err := orderControllers.MarkOrderPaid(db, mapping.OrderID); err != nil {
					logger.Error("failed to mark order paid",
						"order_id", mapping.OrderID, "err", err)
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
					return
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				logger.Warn("callback for unknown gateway order", "liqpay_order_id", payment.OrderID)
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
				return
			}
		}

		c.Status(http.StatusOK)
	}
}

// pollStatus re-queries the gateway's status endpoint for an internal order.
func pollStatus(c *gin.Context, db *gorm.DB, cfg *config.Config, orderID uint) {
	var mapping models.LiqpayOrder
	if err := db.Where("order_id = ?", orderID).First(&mapping).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	params := map[string]string{
		"public_key": cfg.LiqPay.PublicKey,
		"version":    "3",
		"action":     "status",
		"order_id":   mapping.LiqpayOrderID,
	}

	data, err := EncodePayload(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build payload"})
		return
	}

	form := url.Values{}
	form.Set("data", data)
	form.Set("signature", Sign(cfg.LiqPay.PrivateKey, data))

	resp, err := http.PostForm(cfg.LiqPay.APIURL, form)
	if err != nil {
		logger.Error("liqpay status request failed", "order_id", orderID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gateway request failed"})
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gateway request failed"})
		return
	}

	var gatewayResp map[string]interface{}
	if err := json.Unmarshal(body, &gatewayResp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid gateway response"})
		return
	}

	status, _ := gatewayResp["status"].(string)
	if status == "" {
		status = "unknown"
	}
	c.JSON(http.StatusOK, gin.H{"status": status, "liqpay": gatewayResp})
}

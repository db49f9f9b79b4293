package results

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"gurukul/middleware"
	"gurukul/models"
	"gurukul/settings"
	"gurukul/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var hmacSecret = func() string {
	if s := os.Getenv("RESULT_HMAC_SECRET"); s != "" {
		return s
	}
	return "change_this_secret"
}()

// GenerateQRPayload returns resultID|timestamp|signature so a printed
// notice can be checked later without trusting the paper.
func GenerateQRPayload(resultID string) string {
	data := fmt.Sprintf("%s|%d", resultID, time.Now().Unix())

	h := hmac.New(sha256.New, []byte(hmacSecret))
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s|%s", data, sig)
}

// VerifyQRPayload checks the signature and returns the embedded result id.
func VerifyQRPayload(payload string) (string, bool) {
	parts := strings.Split(payload, "|")
	if len(parts) != 3 {
		return "", false
	}
	data := parts[0] + "|" + parts[1]

	h := hmac.New(sha256.New, []byte(hmacSecret))
	h.Write([]byte(data))
	expected := base64.StdEncoding.EncodeToString(h.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(parts[2])) {
		return "", false
	}
	return parts[0], true
}

func PrintResult(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid result id")
		return
	}

	var result models.Result
	if err := Res.Collection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&result); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Result not found")
		return
	}

	qrPNG, err := qrcode.Encode(GenerateQRPayload(result.ID.Hex()), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	site, err := settings.Load(context.TODO())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	if site.SiteName != "" {
		pdf.SetFont("Arial", "B", 18)
		pdf.Cell(0, 10, site.SiteName)
		pdf.Ln(10)
	}
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Result Notice")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Student: %s", result.StudentName))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Exam: %s (%d)", result.ExamName, result.Year))
	pdf.Ln(8)
	if result.Rank != "" {
		pdf.Cell(0, 10, fmt.Sprintf("Rank: %s", result.Rank))
		pdf.Ln(8)
	}
	if result.Score != "" {
		pdf.Cell(0, 10, fmt.Sprintf("Score: %s", result.Score))
		pdf.Ln(8)
	}
	pdf.SetFont("Arial", "I", 10)
	pdf.Cell(0, 10, fmt.Sprintf("Issued by: %s", claims.Username))
	pdf.Ln(4)
	pdf.SetFont("Arial", "", 12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=result-"+result.ID.Hex()+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func VerifyResult(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	payload := r.URL.Query().Get("payload")
	if payload == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Payload is required")
		return
	}

	resultID, ok := VerifyQRPayload(payload)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid or tampered payload")
		return
	}

	objID, err := primitive.ObjectIDFromHex(resultID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid result id in payload")
		return
	}

	var result models.Result
	if err := Res.Collection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&result); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Result not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"valid": true, "result": result})
}

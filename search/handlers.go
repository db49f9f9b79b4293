package search

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"gurukul/utils"

	"github.com/julienschmidt/httprouter"
)

// SearchHandler serves the public site search over blogs, courses and
// current affairs.
func SearchHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	q := r.URL.Query().Get("q")
	if q == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing query")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	results, err := Query(ctx, q, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Search failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, results)
}

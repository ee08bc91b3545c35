package catalog

import (
	"net/http"

	apperrors "payfee/internal/errors"
)

var ErrProductNotFound = apperrors.New("PRODUCT_NOT_FOUND", "product not found", http.StatusNotFound)

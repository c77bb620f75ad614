package link

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/linkshelf-backend/internal/domain"
)

// ListLinksInput holds the forward pagination arguments.
// First nil means the store default page size; After nil means from the start.
type ListLinksInput struct {
	First *int
	After *string
}

// Validate checks First against the allowed range.
func (i ListLinksInput) Validate(maxPageSize int) error {
	if i.First == nil {
		return nil
	}
	if *i.First < 0 {
		return domain.NewValidationError("first", "must not be negative")
	}
	if maxPageSize > 0 && *i.First > maxPageSize {
		return domain.NewValidationError("first", fmt.Sprintf("max %d", maxPageSize))
	}
	return nil
}

// CreateLinkInput holds the fields of a new link. All five are stored as given.
type CreateLinkInput struct {
	Title       string
	URL         string
	ImageURL    string
	Category    string
	Description string
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.NewValidationError("id", "required")
	}
	return nil
}

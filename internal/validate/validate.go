// Package validate holds the request payload shapes for all mutating
// endpoints and their validation rules. Validation is pure: no I/O, no
// persistence, and every violated rule is reported, not just the first.
package validate

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// UserCreate is the payload for registration and user creation.
type UserCreate struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate returns one message per violated field, in field order.
func (r UserCreate) Validate() []string {
	var msgs []string
	msgs = appendRule(msgs, r.Username,
		validation.Required.Error("Username is required"),
		validation.RuneLength(3, 0).Error("Username must be at least 3 characters long"),
	)
	msgs = appendRule(msgs, r.Email,
		validation.Required.Error("Email is required"),
		is.Email.Error("Invalid email format"),
	)
	msgs = appendRule(msgs, r.Password,
		validation.Required.Error("Password is required"),
		validation.RuneLength(6, 0).Error("Password must be at least 6 characters long"),
	)
	return msgs
}

// UserUpdate carries optional replacement fields. Absent fields are left
// untouched by the directory.
type UserUpdate struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (r UserUpdate) Validate() []string {
	var msgs []string
	if r.Username != nil {
		msgs = appendRule(msgs, *r.Username,
			validation.RuneLength(3, 0).Error("Username must be at least 3 characters long"),
		)
	}
	if r.Email != nil {
		msgs = appendRule(msgs, *r.Email,
			is.Email.Error("Invalid email format"),
		)
	}
	if r.Password != nil {
		msgs = appendRule(msgs, *r.Password,
			validation.RuneLength(6, 0).Error("Password must be at least 6 characters long"),
		)
	}
	return msgs
}

// ProductCreate is the payload for product creation. Price is a pointer
// so a missing price can be told apart from a zero one.
type ProductCreate struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int64   `json:"stock"`
}

func (r ProductCreate) Validate() []string {
	var msgs []string
	msgs = appendRule(msgs, r.Name,
		validation.Required.Error("Product name is required"),
	)
	msgs = appendRule(msgs, r.Description,
		validation.Required.Error("Description is required"),
	)
	if r.Price == nil {
		msgs = append(msgs, "Price is required")
	} else {
		msgs = appendRule(msgs, *r.Price,
			validation.Min(0.0).Error("Price must be a positive number"),
		)
	}
	if r.Stock != nil {
		msgs = appendRule(msgs, *r.Stock,
			validation.Min(int64(0)).Error("Stock must be a positive number"),
		)
	}
	return msgs
}

// ProductUpdate carries optional replacement fields; nothing is required.
type ProductUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int64   `json:"stock"`
}

func (r ProductUpdate) Validate() []string {
	var msgs []string
	if r.Price != nil {
		msgs = appendRule(msgs, *r.Price,
			validation.Min(0.0).Error("Price must be a positive number"),
		)
	}
	if r.Stock != nil {
		msgs = appendRule(msgs, *r.Stock,
			validation.Min(int64(0)).Error("Stock must be a positive number"),
		)
	}
	return msgs
}

// appendRule runs the rules against a single value and appends the first
// failure. Rules are evaluated the way ozzo evaluates struct fields: one
// message per field.
func appendRule(msgs []string, value any, rules ...validation.Rule) []string {
	if err := validation.Validate(value, rules...); err != nil {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

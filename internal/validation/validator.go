package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"creatorlab/internal/model"

	"github.com/go-playground/validator/v10"
)

// VideoHosts is the allow-list of video hosting hostnames
var VideoHosts = []string{"www.youtube.com", "youtube.com", "youtu.be"}

// TextCategories are the categories accepted for text feedback requests
var TextCategories = []model.Category{
	model.CategoryScript,
	model.CategoryPodcast,
	model.CategoryArticle,
	model.CategoryChannelPlan,
}

// Validator validates and coerces raw payloads into typed requests
type Validator struct {
	v *validator.Validate
}

// New creates a validator with the custom tags registered
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("videohost", func(fl validator.FieldLevel) bool {
		return IsVideoHostURL(fl.Field().String())
	})
	_ = v.RegisterValidation("textcategory", func(fl validator.FieldLevel) bool {
		return isTextCategory(model.Category(fl.Field().String()))
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return IsCategory(model.Category(fl.Field().String()))
	})
	return &Validator{v: v}
}

// IsVideoHostURL reports whether raw parses as a URL on an allow-listed host
func IsVideoHostURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, allowed := range VideoHosts {
		if host == allowed {
			return true
		}
	}
	return false
}

// IsCategory reports whether c is a known category
func IsCategory(c model.Category) bool {
	for _, known := range model.Categories {
		if c == known {
			return true
		}
	}
	return false
}

func isTextCategory(c model.Category) bool {
	for _, known := range TextCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Struct validates a tagged struct and converts failures into a *ValidationError
func (v *Validator) Struct(s any) error {
	ve := &ValidationError{}
	v.collect(s, ve)
	if ve.empty() {
		return nil
	}
	return ve
}

func (v *Validator) collect(s any, ve *ValidationError) {
	err := v.v.Struct(s)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		ve.add("_", err.Error())
		return
	}
	for _, fe := range fieldErrs {
		ve.add(fieldPath(fe), message(fe))
	}
}

// fieldPath drops the top-level struct name from the namespace
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s items", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at most %s items", fe.Param())
		}
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "url":
		return "must be a valid URL"
	case "videohost":
		return "must be a YouTube URL (" + strings.Join(VideoHosts, ", ") + ")"
	case "textcategory":
		return "must be one of: " + joinCategories(TextCategories)
	case "category":
		return "must be one of: " + joinCategories(model.Categories)
	case "gte", "lte":
		return fmt.Sprintf("must be %s %s", map[string]string{"gte": ">=", "lte": "<="}[fe.Tag()], fe.Param())
	default:
		return "is invalid"
	}
}

func joinCategories(cs []model.Category) string {
	names := make([]string, 0, len(cs))
	for _, c := range cs {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

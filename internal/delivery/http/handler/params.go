package handler

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"kaamwala/internal/infrastructure/marketplace"
	"kaamwala/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

var errImageTooLarge = errors.New("image exceeds size limit")

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func isJSON(c fiber.Ctx) bool {
	return strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEApplicationJSON)
}

func isMultipart(c fiber.Ctx) bool {
	return strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm)
}

// formValues returns every value of key in a multipart body, split on commas
// so that both repeated fields and a single joined field work.
func formValues(c fiber.Ctx, key string) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, raw := range form.Value[key] {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

// imageFromForm reads the uploaded file under field, or returns nil when the
// form has none.
func imageFromForm(c fiber.Ctx, field string) (*marketplace.File, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	files := form.File[field]
	if len(files) == 0 {
		return nil, nil
	}
	fh := files[0]
	if fh.Size > usecase.MaxImageSize {
		return nil, errImageTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, usecase.MaxImageSize+1))
	if err != nil {
		return nil, err
	}
	return &marketplace.File{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func imageError(err error) error {
	if errors.Is(err, errImageTooLarge) {
		return mapUsecaseError(errors.Join(usecase.ErrInvalidImage, err))
	}
	return badRequest(err)
}

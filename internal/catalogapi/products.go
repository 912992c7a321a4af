package catalogapi

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/MikeMC777/catalog-admin/internal/product"
)

type productsResponse struct {
	Envelope
	Products []wireProduct `json:"products"`
}

type subcategoriesResponse struct {
	Envelope
	SubCategories []string `json:"subCategories"`
}

func (c *Client) ListProducts(ctx context.Context) ([]product.Product, error) {
	var out productsResponse
	if err := c.do(ctx, "product.list", http.MethodGet, "/product/list", nil, "", &out); err != nil {
		return nil, err
	}
	list := make([]product.Product, 0, len(out.Products))
	for _, w := range out.Products {
		list = append(list, w.toDomain())
	}
	return list, nil
}

func (c *Client) Subcategories(ctx context.Context) ([]string, error) {
	var out subcategoriesResponse
	if err := c.do(ctx, "product.subcategories", http.MethodGet, "/product/subcategories", nil, "", &out); err != nil {
		return nil, err
	}
	return out.SubCategories, nil
}

// AddProduct posts the submission as a multipart form and returns the
// server's confirmation message.
func (c *Client) AddProduct(ctx context.Context, s product.Submission) (string, error) {
	const op = "product.add"
	body, contentType, err := encodeSubmission(s)
	if err != nil {
		return "", &RequestError{Op: op, Err: fmt.Errorf("encode form: %w", err)}
	}
	var out Envelope
	if err := c.do(ctx, op, http.MethodPost, "/product/add", body, contentType, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) RemoveProduct(ctx context.Context, id string) (string, error) {
	var out Envelope
	if err := c.postJSON(ctx, "product.remove", "/product/remove", removeProductRequest{ID: id}, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// UpdateProduct sends the whole record for replacement.
func (c *Client) UpdateProduct(ctx context.Context, p product.Product) (string, error) {
	const op = "product.update"
	req, err := newUpdateProductRequest(p)
	if err != nil {
		return "", &RequestError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
	}
	var out Envelope
	if err := c.postJSON(ctx, op, "/product/update", req, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Ping lists products and discards them; it backs the health probe.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.ListProducts(ctx)
	return err
}

func encodeSubmission(s product.Submission) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	sizes, err := encodeList(s.Sizes)
	if err != nil {
		return nil, "", err
	}
	fields := [][2]string{
		{"name", s.Name},
		{"description", s.Description},
		{"category", string(s.Category)},
		{"price", s.Price.String()},
	}
	if s.DiscountPrice != nil {
		fields = append(fields, [2]string{"discountedPrice", s.DiscountPrice.String()})
	}
	fields = append(fields,
		[2]string{"subCategory", s.SubCategory},
		[2]string{"color", s.Color},
		[2]string{"bestseller", strconv.FormatBool(s.Bestseller)},
		[2]string{"sizes", sizes},
		[2]string{"count", strconv.Itoa(s.Count)},
	)
	if len(s.Ages) > 0 {
		ages, err := encodeList(s.Ages)
		if err != nil {
			return nil, "", err
		}
		fields = append(fields, [2]string{"ages", ages})
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", err
		}
	}

	for i, img := range s.Images {
		if img == nil {
			continue
		}
		if err := writeImage(w, fmt.Sprintf("image%d", i+1), img); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func writeImage(w *multipart.Writer, field string, img *product.Image) error {
	name := img.Name
	if name == "" {
		name = field + mimetype.Detect(img.Data).Extension()
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(name)))
	h.Set("Content-Type", mimetype.Detect(img.Data).String())
	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = part.Write(img.Data)
	return err
}

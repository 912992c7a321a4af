package catalogapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/catalog-admin/internal/order"
	"github.com/MikeMC777/catalog-admin/internal/product"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(srv.URL+"/", "default", 2*time.Second, log)
}

func TestListProducts_TolerantDecoding(t *testing.T) {
	var gotToken, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get(TokenHeader)
		gotPath = r.URL.Path
		_, _ = io.WriteString(w, `{"success":true,"products":[
			{"_id":"1","name":"Shirt","price":"19.90","discountedPrice":9.5,"category":"Men","sizes":["M"],"bestseller":"true","count":"4","image":"http://x/1.png"},
			{"_id":"2","name":"Coat","price":120,"discountedPrice":null,"category":"Women","count":0,"image":["http://x/2a.png","http://x/2b.png"],"bestseller":false},
			{"_id":"3","name":"Hat","price":5,"count":2.0}
		]}`)
	})

	list, err := c.ListProducts(WithToken(context.Background(), "caller"))
	require.NoError(t, err)
	assert.Equal(t, "caller", gotToken)
	assert.Equal(t, "/product/list", gotPath)
	require.Len(t, list, 3)

	p := list[0]
	assert.Equal(t, "1", p.ID)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("19.9")))
	require.NotNil(t, p.DiscountPrice)
	assert.Equal(t, "9.5", p.DiscountPrice.String())
	assert.True(t, p.Bestseller)
	assert.Equal(t, 4, p.Count)
	assert.Equal(t, []string{"http://x/1.png"}, p.Images)
	assert.Equal(t, []string{}, p.Ages)

	assert.Nil(t, list[1].DiscountPrice)
	assert.False(t, list[1].InStock())
	assert.Len(t, list[1].Images, 2)
	assert.Equal(t, []string{}, list[1].Sizes)
	assert.Equal(t, 2, list[2].Count)

	_, err = c.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "default", gotToken)
}

func TestListProducts_BadScalarsKeepTheList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"products":[
			{"_id":"1","name":"Shirt","price":"ten","discountedPrice":"","count":"abc","bestseller":"maybe"},
			{"_id":"2","name":"Coat","price":80,"discountedPrice":"n/a","count":"0.5"},
			{"_id":"3","name":"Hat","price":5,"discountedPrice":0,"count":-2.5},
			{"_id":"4","name":"Cap","price":"7","discountedPrice":" 6.5 ","count":"3"}
		]}`)
	})

	list, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 4)

	assert.True(t, list[0].Price.IsZero())
	assert.Nil(t, list[0].DiscountPrice)
	assert.Equal(t, 0, list[0].Count)
	assert.False(t, list[0].Bestseller)
	assert.False(t, list[0].InStock())

	assert.Nil(t, list[1].DiscountPrice)
	assert.Equal(t, 1, list[1].Count, "a positive fraction is still in stock")
	assert.True(t, list[1].InStock())

	assert.Nil(t, list[2].DiscountPrice, "zero discount means none")
	assert.Equal(t, -2, list[2].Count)

	require.NotNil(t, list[3].DiscountPrice)
	assert.Equal(t, "6.5", list[3].DiscountPrice.String())
	assert.Equal(t, 3, list[3].Count)
}

func TestListOrders_Dates(t *testing.T) {
	var gotMethod string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		_, _ = io.WriteString(w, `{"success":true,"orders":[
			{"_id":"o1","address":{"firstName":"Ana","lastName":"Ruiz","zipcode":"15001"},"items":[{"name":"Shirt","quantity":"2","size":"M"}],"amount":59.8,"paymentMethod":"COD","payment":false,"status":"Packing","date":1714564800000},
			{"_id":"o2","address":{},"items":[],"amount":"10","payment":"true","status":"Shipped","date":"2024-05-01T12:00:00Z"}
		]}`)
	})

	list, err := c.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	require.Len(t, list, 2)

	want := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	assert.True(t, list[0].Date.Equal(want), list[0].Date)
	assert.True(t, list[1].Date.Equal(want), list[1].Date)
	assert.Equal(t, "Ana Ruiz", list[0].Address.FullName())
	assert.Equal(t, "15001", list[0].Address.Zipcode)
	assert.Equal(t, []order.Item{{Name: "Shirt", Quantity: 2, Size: "M"}}, list[0].Items)
	assert.Equal(t, order.StatusPacking, list[0].Status)
	assert.True(t, list[1].Payment)
}

func TestErrors(t *testing.T) {
	t.Run("application", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"success":false,"message":"Not Authorized Login Again"}`)
		})
		_, err := c.ListProducts(context.Background())
		var aerr *ApplicationError
		require.True(t, errors.As(err, &aerr))
		assert.Equal(t, "Not Authorized Login Again", aerr.Error())
		assert.Equal(t, "product.list", aerr.Op)
	})

	t.Run("status", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		err := c.UpdateStatus(context.Background(), "o1", order.StatusShipped)
		var rerr *RequestError
		require.True(t, errors.As(err, &rerr))
		assert.Equal(t, http.StatusServiceUnavailable, rerr.StatusCode)
		assert.Equal(t, "order.status", rerr.Op)
	})

	t.Run("decode", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `<html>oops</html>`)
		})
		_, err := c.Subcategories(context.Background())
		var rerr *RequestError
		assert.True(t, errors.As(err, &rerr))
	})

	t.Run("transport", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()
		c := New(url, "", time.Second, nil)
		err := c.Ping(context.Background())
		var rerr *RequestError
		require.True(t, errors.As(err, &rerr))
		assert.Zero(t, rerr.StatusCode)
		assert.NotNil(t, errors.Unwrap(rerr))
	})
}

func TestUpdateProduct_Body(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product/update", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = io.WriteString(w, `{"success":true,"message":"Product Updated"}`)
	})

	discount := decimal.RequireFromString("15.00")
	msg, err := c.UpdateProduct(context.Background(), product.Product{
		ID: "p1", Name: "Shirt", Price: decimal.RequireFromString("20.50"), DiscountPrice: &discount,
		Category: product.CategoryMen, Sizes: []string{"M", "XL"}, Ages: nil, Bestseller: true, Count: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, "Product Updated", msg)

	assert.Equal(t, "p1", body["productId"])
	assert.Equal(t, 20.5, body["price"])
	assert.Equal(t, 15.0, body["discountedPrice"])
	assert.Equal(t, `["M","XL"]`, body["sizes"])
	assert.Equal(t, `[]`, body["ages"])
	assert.Equal(t, "true", body["bestseller"])
	assert.Equal(t, 0.0, body["count"])
}

func TestRemoveAndPayment_Body(t *testing.T) {
	var paths []string
	var bodies []map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var b map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&b))
		paths = append(paths, r.URL.Path)
		bodies = append(bodies, b)
		_, _ = io.WriteString(w, `{"success":true,"message":"ok"}`)
	})

	_, err := c.RemoveProduct(context.Background(), "p9")
	require.NoError(t, err)
	require.NoError(t, c.UpdatePayment(context.Background(), "o1", true))
	require.NoError(t, c.UpdateStatus(context.Background(), "o1", order.StatusOutForDelivery))

	assert.Equal(t, []string{"/product/remove", "/order/updatePaymentStatus", "/order/status"}, paths)
	assert.Equal(t, map[string]any{"id": "p9"}, bodies[0])
	assert.Equal(t, map[string]any{"orderId": "o1", "payment": true}, bodies[1])
	assert.Equal(t, map[string]any{"orderId": "o1", "status": "Out for delivery"}, bodies[2])
}

var gifBytes = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")

func TestAddProduct_Multipart(t *testing.T) {
	type part struct{ contentType, filename string }
	var (
		values map[string][]string
		files  map[string]part
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		values = r.MultipartForm.Value
		files = map[string]part{}
		for k, fhs := range r.MultipartForm.File {
			files[k] = part{fhs[0].Header.Get("Content-Type"), fhs[0].Filename}
		}
		_, _ = io.WriteString(w, `{"success":true,"message":"Product Added"}`)
	})

	sub := product.Submission{
		Name: "Romper", Description: "soft", Price: decimal.RequireFromString("12.0"),
		Category: product.CategoryKids, SubCategory: "Rompers", Color: "blue",
		Sizes: []string{}, Ages: []string{"3-6 Months"}, Count: 5,
	}
	sub.Images[0] = &product.Image{Name: `we"ird.gif`, Data: gifBytes}
	sub.Images[2] = &product.Image{Data: gifBytes}

	msg, err := c.AddProduct(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, "Product Added", msg)

	assert.Equal(t, []string{"Romper"}, values["name"])
	assert.Equal(t, []string{"12"}, values["price"])
	assert.Equal(t, []string{"Kids"}, values["category"])
	assert.Equal(t, []string{"[]"}, values["sizes"])
	assert.Equal(t, []string{`["3-6 Months"]`}, values["ages"])
	assert.Equal(t, []string{"false"}, values["bestseller"])
	assert.Equal(t, []string{"5"}, values["count"])
	assert.NotContains(t, values, "discountedPrice")

	assert.Equal(t, part{"image/gif", `we"ird.gif`}, files["image1"])
	assert.Equal(t, part{"image/gif", "image3.gif"}, files["image3"])
	assert.NotContains(t, files, "image2")
	assert.NotContains(t, files, "image4")
}

func TestAddProduct_OmitsEmptyAges(t *testing.T) {
	var values map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		values = r.MultipartForm.Value
		_, _ = io.WriteString(w, `{"success":true,"message":"Product Added"}`)
	})

	discount := decimal.RequireFromString("8")
	_, err := c.AddProduct(context.Background(), product.Submission{
		Name: "Tee", Price: decimal.RequireFromString("10"), DiscountPrice: &discount,
		Category: product.CategoryMen, Sizes: []string{"S"}, Count: 1,
	})
	require.NoError(t, err)
	assert.NotContains(t, values, "ages")
	assert.Equal(t, []string{"8"}, values["discountedPrice"])
	assert.Equal(t, []string{`["S"]`}, values["sizes"])
}

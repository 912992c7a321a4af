package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/MikeMC777/catalog-admin/internal/audit"
	"github.com/MikeMC777/catalog-admin/internal/catalogapi"
	"github.com/MikeMC777/catalog-admin/internal/httpx"
	"github.com/MikeMC777/catalog-admin/internal/order"
	"github.com/MikeMC777/catalog-admin/internal/product"
)

const maxImageBytes = 8 << 20

// catalogAPI is everything the screens need from the remote catalog API.
type catalogAPI interface {
	product.Adder
	product.Catalog
	order.Gateway
}

type deps struct {
	api   catalogAPI
	audit audit.Repository
	guard *product.DeleteGuard
	ttl   time.Duration
	log   *logrus.Logger
}

func registerRoutes(r *gin.Engine, d deps) {
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	a := r.Group("/admin")
	a.GET("/products", listProductsHandler(d))
	a.GET("/products/subcategories", subcategoriesHandler(d))
	a.POST("/products", createProductHandler(d))
	a.PUT("/products/:id", updateProductHandler(d))
	a.POST("/products/:id/delete", markDeleteHandler(d))
	a.POST("/deletions/:ticket/confirm", confirmDeleteHandler(d))
	a.DELETE("/deletions/:ticket", cancelDeleteHandler(d))

	a.GET("/orders", listOrdersHandler(d))
	a.PUT("/orders/:id/status", orderStatusHandler(d))
	a.PUT("/orders/:id/payment", orderPaymentHandler(d))

	a.GET("/audit", auditHandler(d))
}

// apiContext forwards the caller's token, if any, to the catalog API.
func apiContext(c *gin.Context) context.Context {
	return catalogapi.WithToken(c.Request.Context(), c.GetHeader(catalogapi.TokenHeader))
}

// inputError is a malformed request to the admin itself.
type inputError struct{ msg string }

func (e inputError) Error() string { return e.msg }

func classify(err error) (int, string) {
	var (
		verr *product.ValidationError
		ierr inputError
		aerr *catalogapi.ApplicationError
		rerr *catalogapi.RequestError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Message
	case errors.As(err, &ierr):
		return http.StatusBadRequest, ierr.msg
	case errors.Is(err, order.ErrUnknownStatus), errors.Is(err, product.ErrImageSlot):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, product.ErrNotFound), errors.Is(err, product.ErrTicket):
		return http.StatusNotFound, err.Error()
	case errors.As(err, &aerr):
		return http.StatusUnprocessableEntity, aerr.Error()
	case errors.As(err, &rerr):
		return http.StatusBadGateway, "catalog service unavailable: " + rerr.Error()
	}
	return http.StatusInternalServerError, err.Error()
}

func fail(c *gin.Context, log *logrus.Logger, err error) {
	status, msg := classify(err)
	log.WithFields(logrus.Fields{
		"rid":    httpx.RID(c),
		"path":   c.FullPath(),
		"status": status,
	}).WithError(err).Warn("request failed")
	c.AbortWithStatusJSON(status, Notification{Success: false, Message: msg})
}

// stale logs a mutation whose follow-up re-fetch failed.
func stale(c *gin.Context, log *logrus.Logger, err error) {
	log.WithField("rid", httpx.RID(c)).WithError(err).Warn("mutation applied, re-fetch failed")
}

func (d deps) record(c *gin.Context, action audit.Action, target, detail string) {
	if d.audit == nil {
		return
	}
	e := audit.NewEntry(action, target, detail, httpx.RID(c))
	if err := d.audit.Record(c.Request.Context(), e); err != nil {
		d.log.WithError(err).WithField("action", action).Warn("audit record failed")
	}
}

func catalogView(b *product.Browser) CatalogView {
	f := b.Filter()
	return CatalogView{
		Field:      f.Field,
		Query:      f.Query,
		Available:  b.Available(),
		OutOfStock: b.OutOfStock(),
	}
}

// listProductsHandler
// @Summary      List products
// @Description  Fetches the catalog and splits it into available and out-of-stock products, narrowed by one search field.
// @Tags         products
// @Produce      json
// @Param        token  header  string  false  "catalog API token"
// @Param        field  query   string  false  "search field"  Enums(name, category, subCategory, color, price, ages, sizes)
// @Param        q      query   string  false  "search text"
// @Success      200  {object}  CatalogView
// @Failure      400  {object}  Notification
// @Failure      502  {object}  Notification
// @Router       /admin/products [get]
func listProductsHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		b := product.NewBrowser(d.api)
		if err := b.SetFilter(c.Query("field"), c.Query("q")); err != nil {
			fail(c, d.log, inputError{err.Error()})
			return
		}
		if err := b.Refresh(apiContext(c)); err != nil {
			fail(c, d.log, err)
			return
		}
		c.JSON(http.StatusOK, catalogView(b))
	}
}

// subcategoriesHandler
// @Summary      Subcategory suggestions
// @Tags         products
// @Produce      json
// @Param        prefix  query  string  false  "typed prefix"
// @Success      200  {object}  SubcategoryList
// @Failure      502  {object}  Notification
// @Router       /admin/products/subcategories [get]
func subcategoriesHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		prefix := c.Query("prefix")
		list, err := product.NewComposer(d.api).Suggestions(apiContext(c), prefix)
		if err != nil {
			fail(c, d.log, err)
			return
		}
		c.JSON(http.StatusOK, SubcategoryList{Prefix: prefix, Suggestions: list})
	}
}

// createProductHandler
// @Summary      Add a product
// @Description  Validates the form locally and forwards it to the catalog API. sizes and ages may repeat or hold a JSON list.
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        name           formData  string  true   "name"
// @Param        description    formData  string  false  "description"
// @Param        price          formData  string  true   "price"
// @Param        discountPrice  formData  string  false  "discounted price"
// @Param        category       formData  string  false  "category"  Enums(Men, Women, Boy, Kids)
// @Param        subCategory    formData  string  false  "subcategory"
// @Param        color          formData  string  false  "color"
// @Param        sizes          formData  []string  false  "sizes"  collectionFormat(multi)
// @Param        ages           formData  []string  false  "ages, e.g. 3 or 3-4"  collectionFormat(multi)
// @Param        ageUnit        formData  string  false  "age unit"  Enums(Years, Months)
// @Param        bestseller     formData  bool    false  "bestseller"
// @Param        count          formData  int     true   "stock count"
// @Param        image1         formData  file    false  "image 1"
// @Param        image2         formData  file    false  "image 2"
// @Param        image3         formData  file    false  "image 3"
// @Param        image4         formData  file    false  "image 4"
// @Success      201  {object}  Notification
// @Failure      400  {object}  Notification
// @Failure      422  {object}  Notification
// @Failure      502  {object}  Notification
// @Router       /admin/products [post]
func createProductHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		comp := product.NewComposer(d.api)
		if err := fillDraft(c, &comp.Draft); err != nil {
			fail(c, d.log, err)
			return
		}
		name := strings.TrimSpace(comp.Draft.Name)
		msg, err := comp.Submit(apiContext(c))
		if err != nil {
			fail(c, d.log, err)
			return
		}
		d.record(c, audit.ActionProductAdd, "", name)
		c.JSON(http.StatusCreated, Notification{Success: true, Message: msg})
	}
}

func fillDraft(c *gin.Context, dr *product.Draft) error {
	dr.Name = c.PostForm("name")
	dr.Description = c.PostForm("description")
	dr.Price = c.PostForm("price")
	dr.DiscountPrice = c.PostForm("discountPrice")
	if dr.DiscountPrice == "" {
		dr.DiscountPrice = c.PostForm("discountedPrice")
	}
	if cat := strings.TrimSpace(c.PostForm("category")); cat != "" {
		dr.Category = product.Category(cat)
	}
	dr.SubCategory = c.PostForm("subCategory")
	dr.Color = c.PostForm("color")
	dr.Count = c.PostForm("count")

	if v := strings.TrimSpace(c.PostForm("bestseller")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return inputError{"bestseller must be true or false"}
		}
		dr.Bestseller = b
	}
	if u := c.PostForm("ageUnit"); u != "" {
		if err := dr.SetAgeUnit(u); err != nil {
			return err
		}
	}

	sizes, err := formList(c, "sizes")
	if err != nil {
		return err
	}
	for _, s := range sizes {
		if err := dr.AddSize(s); err != nil {
			return err
		}
	}
	ages, err := formList(c, "ages")
	if err != nil {
		return err
	}
	for _, a := range ages {
		if err := dr.AddAge(a); err != nil {
			return err
		}
	}

	for slot := 1; slot <= product.MaxImages; slot++ {
		fh, err := c.FormFile(fmt.Sprintf("image%d", slot))
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			continue
		}
		if err != nil {
			return inputError{fmt.Sprintf("image%d: %v", slot, err)}
		}
		img, err := readImage(fh)
		if err != nil {
			return inputError{fmt.Sprintf("image%d: %v", slot, err)}
		}
		if err := dr.SetImage(slot, img); err != nil {
			return err
		}
	}
	return nil
}

// formList reads a repeated field; a single value holding a JSON array is
// expanded.
func formList(c *gin.Context, key string) ([]string, error) {
	values := c.PostFormArray(key)
	if len(values) == 1 && strings.HasPrefix(strings.TrimSpace(values[0]), "[") {
		var list []string
		if err := json.Unmarshal([]byte(values[0]), &list); err != nil {
			return nil, inputError{key + " must be a JSON list of strings"}
		}
		return list, nil
	}
	return values, nil
}

func readImage(fh *multipart.FileHeader) (*product.Image, error) {
	if fh.Size > maxImageBytes {
		return nil, fmt.Errorf("larger than %d bytes", maxImageBytes)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("larger than %d bytes", maxImageBytes)
	}
	if mt := mimetype.Detect(data); !strings.HasPrefix(mt.String(), "image/") {
		return nil, fmt.Errorf("not an image (%s)", mt.String())
	}
	return &product.Image{Name: fh.Filename, Data: data}, nil
}

// updateProductHandler
// @Summary      Edit a product
// @Description  Applies the patch to a copy of the current record and sends the whole record back.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "product id"
// @Param        body  body  EditProductRequest  true  "changes"
// @Success      200  {object}  EditProductResponse
// @Failure      400  {object}  Notification
// @Failure      404  {object}  Notification
// @Failure      422  {object}  Notification
// @Failure      502  {object}  Notification
// @Router       /admin/products/{id} [put]
func updateProductHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EditProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, d.log, inputError{"invalid json: " + err.Error()})
			return
		}
		ctx := apiContext(c)
		b := product.NewBrowser(d.api)
		if err := b.Refresh(ctx); err != nil {
			fail(c, d.log, err)
			return
		}
		s, err := b.BeginEdit(c.Param("id"))
		if err != nil {
			fail(c, d.log, err)
			return
		}
		if err := applyEdit(s, req); err != nil {
			fail(c, d.log, err)
			return
		}
		msg, err := b.SubmitEdit(ctx)
		switch {
		case errors.Is(err, product.ErrRefresh):
			stale(c, d.log, err)
		case err != nil:
			fail(c, d.log, err)
			return
		}
		d.record(c, audit.ActionProductUpdate, s.Product.ID, s.Product.Name)
		c.JSON(http.StatusOK, EditProductResponse{
			Notification: Notification{Success: true, Message: msg},
			Product:      s.Product,
		})
	}
}

func applyEdit(s *product.EditSession, req EditProductRequest) error {
	if req.Name != nil {
		s.SetName(*req.Name)
	}
	if req.Description != nil {
		s.SetDescription(*req.Description)
	}
	if req.SubCategory != nil {
		s.SetSubCategory(*req.SubCategory)
	}
	if req.Color != nil {
		s.SetColor(*req.Color)
	}
	if req.Bestseller != nil {
		s.SetBestseller(*req.Bestseller)
	}
	if req.Category != nil {
		if err := s.SetCategory(*req.Category); err != nil {
			return err
		}
	}
	if req.Price != nil {
		if err := s.SetPrice(req.Price.String()); err != nil {
			return err
		}
	}
	if req.DiscountPrice != nil {
		if err := s.SetDiscountPrice(req.DiscountPrice.String()); err != nil {
			return err
		}
	}
	if req.Count != nil {
		if err := s.SetCount(*req.Count); err != nil {
			return err
		}
	}
	if req.AgeUnit != "" {
		if err := s.SetAgeUnit(req.AgeUnit); err != nil {
			return err
		}
	}
	for _, v := range req.RemoveSizes {
		s.RemoveSize(v)
	}
	for _, v := range req.AddSizes {
		if err := s.AddSize(v); err != nil {
			return err
		}
	}
	for _, v := range req.RemoveAges {
		s.RemoveAge(v)
	}
	for _, v := range req.AddAges {
		if err := s.AddAge(v); err != nil {
			return err
		}
	}
	return nil
}

// markDeleteHandler
// @Summary      Ask to delete a product
// @Description  Nothing is removed yet; the returned ticket must be confirmed.
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "product id"
// @Success      200  {object}  DeleteTicket
// @Failure      404  {object}  Notification
// @Failure      502  {object}  Notification
// @Router       /admin/products/{id}/delete [post]
func markDeleteHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		b := product.NewBrowser(d.api)
		if err := b.Refresh(apiContext(c)); err != nil {
			fail(c, d.log, err)
			return
		}
		if err := b.MarkForDeletion(c.Param("id")); err != nil {
			fail(c, d.log, err)
			return
		}
		p, _ := b.Candidate()
		c.JSON(http.StatusOK, DeleteTicket{
			Ticket:  d.guard.Mark(p.ID),
			Product: p,
			Expires: time.Now().Add(d.ttl).UTC(),
		})
	}
}

// confirmDeleteHandler
// @Summary      Confirm a delete
// @Tags         products
// @Produce      json
// @Param        ticket  path  string  true  "ticket from the delete request"
// @Success      200  {object}  CatalogResult
// @Failure      404  {object}  Notification
// @Failure      422  {object}  Notification
// @Failure      502  {object}  Notification
// @Router       /admin/deletions/{ticket}/confirm [post]
func confirmDeleteHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := d.guard.Confirm(c.Param("ticket"))
		if err != nil {
			fail(c, d.log, err)
			return
		}
		ctx := apiContext(c)
		b := product.NewBrowser(d.api)
		if err := b.Refresh(ctx); err != nil {
			fail(c, d.log, err)
			return
		}
		if err := b.MarkForDeletion(id); err != nil {
			fail(c, d.log, err)
			return
		}
		msg, err := b.ConfirmDeletion(ctx)
		switch {
		case errors.Is(err, product.ErrRefresh):
			stale(c, d.log, err)
		case err != nil:
			fail(c, d.log, err)
			return
		}
		d.record(c, audit.ActionProductRemove, id, msg)
		c.JSON(http.StatusOK, CatalogResult{
			Notification: Notification{Success: true, Message: msg},
			Catalog:      catalogView(b),
		})
	}
}

// cancelDeleteHandler
// @Summary      Cancel a delete
// @Tags         products
// @Param        ticket  path  string  true  "ticket from the delete request"
// @Success      204
// @Router       /admin/deletions/{ticket} [delete]
func cancelDeleteHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		d.guard.Cancel(c.Param("ticket"))
		c.Status(http.StatusNoContent)
	}
}

func orderRows(b *order.Board, compact bool) []OrderRow {
	visible := b.Visible()
	rows := make([]OrderRow, 0, len(visible))
	for _, o := range visible {
		row := OrderRow{
			ID:        o.ID,
			Customer:  o.Address.FullName(),
			Status:    o.Status,
			Payment:   o.PaymentLabel(),
			Method:    o.PaymentMethod,
			Amount:    o.Amount,
			Date:      o.Date,
			ItemCount: len(o.Items),
			Expanded:  b.Expanded(o.ID),
		}
		if !compact || row.Expanded {
			row.Detail = &o
		}
		rows = append(rows, row)
	}
	return rows
}

// listOrdersHandler
// @Summary      Order board
// @Description  Orders sorted by status then newest first, filtered by status and customer name.
// @Tags         orders
// @Produce      json
// @Param        status   query  string  false  "status or All"
// @Param        q        query  string  false  "customer name"
// @Param        compact  query  bool    false  "compact rows"
// @Param        expand   query  string  false  "order id to expand in compact view"
// @Success      200  {object}  OrderBoardView
// @Failure      400  {object}  Notification
// @Failure      502  {object}  Notification
// @Router       /admin/orders [get]
func listOrdersHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		b := order.NewBoard(d.api)
		if err := b.SetFilter(c.Query("status"), c.Query("q")); err != nil {
			fail(c, d.log, err)
			return
		}
		compact, err := strconv.ParseBool(c.DefaultQuery("compact", "false"))
		if err != nil {
			fail(c, d.log, inputError{"compact must be true or false"})
			return
		}
		if err := b.Refresh(apiContext(c)); err != nil {
			fail(c, d.log, err)
			return
		}
		if id := c.Query("expand"); id != "" {
			b.Toggle(id)
		}
		f := b.Filter()
		c.JSON(http.StatusOK, OrderBoardView{
			Status:   f.Status,
			Query:    f.Search,
			Compact:  compact,
			Statuses: order.Statuses(),
			Orders:   orderRows(b, compact),
		})
	}
}

// orderStatusHandler
// @Summary      Set order status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string         true  "order id"
// @Param        body  body  StatusRequest  true  "new status"
// @Success      200  {object}  BoardResult
// @Failure      400  {object}  Notification
// @Failure      422  {object}  Notification
// @Failure      502  {object}  Notification
// @Router       /admin/orders/{id}/status [put]
func orderStatusHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, d.log, inputError{"invalid json: " + err.Error()})
			return
		}
		id := c.Param("id")
		b := order.NewBoard(d.api)
		err := b.SetStatus(apiContext(c), id, req.Status)
		switch {
		case errors.Is(err, order.ErrRefresh):
			stale(c, d.log, err)
		case err != nil:
			fail(c, d.log, err)
			return
		}
		d.record(c, audit.ActionOrderStatus, id, req.Status)
		c.JSON(http.StatusOK, BoardResult{
			Notification: Notification{Success: true, Message: "Status updated"},
			Orders:       orderRows(b, false),
		})
	}
}

// orderPaymentHandler
// @Summary      Set payment status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string          true  "order id"
// @Param        body  body  PaymentRequest  true  "Done, Pending or a boolean"
// @Success      200  {object}  BoardResult
// @Failure      400  {object}  Notification
// @Failure      422  {object}  Notification
// @Failure      502  {object}  Notification
// @Router       /admin/orders/{id}/payment [put]
func orderPaymentHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, d.log, inputError{"invalid json: " + err.Error()})
			return
		}
		done, err := parsePayment(req.Payment)
		if err != nil {
			fail(c, d.log, err)
			return
		}
		id := c.Param("id")
		b := order.NewBoard(d.api)
		err = b.SetPayment(apiContext(c), id, done)
		switch {
		case errors.Is(err, order.ErrRefresh):
			stale(c, d.log, err)
		case err != nil:
			fail(c, d.log, err)
			return
		}
		label := order.PaymentPending
		if done {
			label = order.PaymentDone
		}
		d.record(c, audit.ActionOrderPayment, id, label)
		c.JSON(http.StatusOK, BoardResult{
			Notification: Notification{Success: true, Message: "Payment status updated"},
			Orders:       orderRows(b, false),
		})
	}
}

func parsePayment(raw json.RawMessage) (bool, error) {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false, inputError{"payment must be Done, Pending or a boolean"}
	}
	done, err := order.ParsePayment(s)
	if err != nil {
		return false, inputError{err.Error()}
	}
	return done, nil
}

// auditHandler
// @Summary      Recent admin actions
// @Tags         audit
// @Produce      json
// @Param        limit  query  int  false  "max entries (default 20, max 100)"
// @Success      200  {array}  audit.Entry
// @Failure      400  {object}  Notification
// @Router       /admin/audit [get]
func auditHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if err != nil {
			fail(c, d.log, inputError{"limit must be a number"})
			return
		}
		entries, err := d.audit.Recent(c.Request.Context(), limit)
		if err != nil {
			fail(c, d.log, err)
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

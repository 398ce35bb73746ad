// Package reservation implements the checkout flow of the store: cart
// validation, stock reservation under row locks, invoice code generation
// and the compensating cancellation that restores stock.
package reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Sheylasoledispa/veterinaria-pozovet/models"
)

const invoiceRetries = 3

type Engine struct {
	store   Store
	history HistorySink
	now     func() time.Time
}

func NewEngine(store Store, history HistorySink) *Engine {
	return &Engine{store: store, history: history, now: time.Now}
}

// Create validates the cart and, in a single transaction, creates a Pending
// reservation with snapshot line items and debits each product's stock.
// All stock reads happen after the product rows are locked, so two
// concurrent checkouts can never both pass the stock check on a stale
// value. Any error leaves the database untouched.
func (e *Engine) Create(user *models.User, items []CartItem, notes string) (*models.Reservation, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	ids := make([]uint, 0, len(items))
	qty := make(map[uint]int, len(items))
	for _, it := range items {
		if it.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		if _, seen := qty[it.ProductID]; !seen {
			ids = append(ids, it.ProductID)
		}
		qty[it.ProductID] = it.Quantity
	}

	var created *models.Reservation
	err := e.store.Transact(func(tx Tx) error {
		products, err := tx.ProductsForUpdate(ids)
		if err != nil {
			return err
		}
		if len(products) != len(ids) {
			return ErrUnknownProduct
		}

		total := decimal.Zero
		for i := range products {
			p := &products[i]
			n := qty[p.ID]
			if n > p.Stock {
				return &InsufficientStockError{Product: p.Name, Available: p.Stock}
			}
			total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(n))))
		}

		pending, err := tx.StatusByName(models.StatusPending)
		if err != nil {
			return err
		}
		if pending == nil {
			return ErrUnknownStatus
		}

		res := &models.Reservation{
			UserID:    user.ID,
			StatusID:  pending.ID,
			Status:    *pending,
			Total:     total,
			Notes:     notes,
			CreatedBy: user.ID,
			UpdatedBy: user.ID,
		}
		if err := e.createWithInvoiceCode(tx, res); err != nil {
			return err
		}

		lines := make([]models.ReservationItem, 0, len(products))
		for i := range products {
			p := &products[i]
			n := qty[p.ID]
			lines = append(lines, models.ReservationItem{
				ReservationID: res.ID,
				ProductID:     p.ID,
				Quantity:      n,
				UnitPrice:     p.Price,
				Subtotal:      p.Price.Mul(decimal.NewFromInt(int64(n))),
				CreatedBy:     user.ID,
				UpdatedBy:     user.ID,
			})
			p.Stock -= n
			if err := tx.SaveProductStock(p); err != nil {
				return err
			}
		}
		if err := tx.CreateItems(lines); err != nil {
			return err
		}
		res.Items = lines
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.record(created.UserID, user.ID, "reservation_created",
		fmt.Sprintf("reservation %s created, total %s", created.InvoiceCode, created.Total.StringFixed(2)))
	return created, nil
}

// createWithInvoiceCode persists the reservation, regenerating the invoice
// code on a unique-constraint collision. Two checkouts in the same second
// can derive the same sequence number; the retry absorbs that.
func (e *Engine) createWithInvoiceCode(tx Tx, res *models.Reservation) error {
	for attempt := 1; ; attempt++ {
		code, err := nextInvoiceCode(tx, e.now())
		if err != nil {
			return err
		}
		res.InvoiceCode = code
		err = tx.CreateReservation(res)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrDuplicateInvoiceCode) || attempt >= invoiceRetries {
			return err
		}
	}
}

// Cancel flips a Pending reservation to Cancelled and credits every line's
// quantity back to its product, the exact inverse of the debit at checkout.
// Allowed for the owning user or an administrator. The reservation and its
// items are kept.
func (e *Engine) Cancel(actor *models.User, id uint) (*models.Reservation, error) {
	var out *models.Reservation
	err := e.store.Transact(func(tx Tx) error {
		res, err := tx.ReservationForUpdate(id)
		if err != nil {
			return err
		}
		if !strings.EqualFold(strings.TrimSpace(res.Status.Name), models.StatusPending) {
			return ErrNotPending
		}
		if res.UserID != actor.ID && !actor.Role.CanManageReservations() {
			return ErrNotAllowed
		}

		ids := make([]uint, 0, len(res.Items))
		qty := make(map[uint]int, len(res.Items))
		for _, it := range res.Items {
			if _, seen := qty[it.ProductID]; !seen {
				ids = append(ids, it.ProductID)
			}
			qty[it.ProductID] += it.Quantity
		}
		products, err := tx.ProductsForUpdate(ids)
		if err != nil {
			return err
		}
		if len(products) != len(ids) {
			return ErrUnknownProduct
		}
		for i := range products {
			p := &products[i]
			p.Stock += qty[p.ID]
			if err := tx.SaveProductStock(p); err != nil {
				return err
			}
		}

		cancelled, err := tx.StatusByName(models.StatusCancelled)
		if err != nil {
			return err
		}
		if cancelled == nil {
			return ErrUnknownStatus
		}
		res.StatusID = cancelled.ID
		res.Status = *cancelled
		res.UpdatedBy = actor.ID
		if err := tx.SaveReservation(res); err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.record(out.UserID, actor.ID, "reservation_cancelled",
		fmt.Sprintf("reservation %s cancelled", out.InvoiceCode))
	return out, nil
}

// SetStatus moves a reservation to an arbitrary status, resolved by id or
// by case-insensitive name. Administrators only. Deliberately touches no
// stock: only cancellation runs inventory compensation.
func (e *Engine) SetStatus(actor *models.User, id uint, statusID uint, statusName string) (*models.Reservation, error) {
	if !actor.Role.CanManageReservations() {
		return nil, ErrNotAllowed
	}
	var out *models.Reservation
	err := e.store.Transact(func(tx Tx) error {
		res, err := tx.ReservationForUpdate(id)
		if err != nil {
			return err
		}
		var target *models.Status
		switch {
		case statusID != 0:
			target, err = tx.StatusByID(statusID)
		case statusName != "":
			target, err = tx.StatusByName(statusName)
		}
		if err != nil {
			return err
		}
		if target == nil {
			return ErrUnknownStatus
		}
		res.StatusID = target.ID
		res.Status = *target
		res.UpdatedBy = actor.ID
		if err := tx.SaveReservation(res); err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.record(out.UserID, actor.ID, "reservation_status_changed",
		fmt.Sprintf("reservation %s moved to %s", out.InvoiceCode, out.Status.Name))
	return out, nil
}

func (e *Engine) record(subjectID, actorID uint, kind, detail string) {
	if e.history != nil {
		e.history.Record(subjectID, actorID, kind, detail)
	}
}

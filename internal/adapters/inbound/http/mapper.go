package http

import (
	"errors"

	"github.com/cleitonmarx/symbiont-uow/internal/domain"
)

func toError(err error) ErrorResp {
	errResp := ErrorResp{}

	var (
		validation *domain.ValidationErr
		notFound   *domain.NotFoundErr
		conflict   *domain.ConcurrencyConflictErr
	)
	switch {
	case errors.As(err, &validation):
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = validation.Error()
	case errors.As(err, &notFound):
		errResp.Error.Code = NOTFOUND
		errResp.Error.Message = notFound.Error()
	case errors.As(err, &conflict):
		errResp.Error.Code = CONFLICT
		errResp.Error.Message = "product was changed by another request"
		if current, ok := conflict.DatabaseValues.(*domain.Product); ok && current != nil {
			p := toProduct(*current)
			errResp.Error.Current = &p
		} else if conflict.RowDeleted {
			errResp.Error.Message = "product was deleted by another request"
		}
	default:
		errResp.Error.Code = INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toProduct(p domain.Product) Product {
	return Product{
		Id:         p.ID,
		Sku:        p.SKU,
		Name:       p.Name,
		PriceCents: p.PriceCents,
		Stock:      p.Stock,
		Version:    p.Version,
		UpdatedAt:  p.UpdatedAt,
	}
}

package http

import (
	"gestion/internal/core/application/usecases/queries"
	"gestion/internal/core/domain/services"
	"gestion/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func orderSummaryDTO(o queries.OrderSummary) servers.OrderSummary {
	return servers.OrderSummary{
		Id:                 o.ID.Bytes(),
		Number:             o.Number,
		Status:             o.Status.String(),
		ClientId:           o.ClientID.Bytes(),
		ClientName:         o.ClientName,
		SupplierId:         o.SupplierID.Bytes(),
		SupplierName:       o.SupplierName,
		Notes:              optional(o.Notes),
		Total:              o.Total.String(),
		Paid:               o.Paid.String(),
		Outstanding:        o.Outstanding.String(),
		FreightWeightGrams: o.FreightWeightGrams,
		FreightCost:        o.FreightCost.String(),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func orderViewDTO(v queries.OrderView) servers.OrderView {
	items := make([]servers.LineItem, len(v.Items))
	for i, li := range v.Items {
		items[i] = servers.LineItem{
			Id:          li.ID.Bytes(),
			ProductId:   li.ProductID.Bytes(),
			ProductName: li.ProductName,
			Brand:       optional(li.Brand),
			Category:    optional(li.Category),
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice.String(),
			UnitCost:    li.UnitCost.String(),
			Subtotal:    li.Subtotal.String(),
			IsFreight:   li.IsFreight,
		}
	}

	history := make([]servers.StatusChange, len(v.History))
	for i, h := range v.History {
		history[i] = servers.StatusChange{
			From:       h.From.String(),
			To:         h.To.String(),
			ActorId:    h.ActorID.Bytes(),
			OutOfOrder: h.OutOfOrder,
			ChangedAt:  h.ChangedAt,
		}
	}

	attachments := make([]servers.Attachment, len(v.Attachments))
	for i, a := range v.Attachments {
		attachments[i] = attachmentDTO(a)
	}

	return servers.OrderView{
		State:       servers.OrderViewStateFound,
		Order:       orderSummaryDTO(v.Order),
		Items:       items,
		Payments:    paymentHistoryDTO(v.Payments),
		History:     history,
		Attachments: attachments,
	}
}

func paymentHistoryDTO(h queries.PaymentHistory) servers.PaymentHistory {
	payments := make([]servers.Payment, len(h.Payments))
	for i, p := range h.Payments {
		payments[i] = servers.Payment{
			Id:           p.ID.Bytes(),
			Amount:       p.Amount.String(),
			Method:       string(p.Method),
			PaidAt:       openapi_types.Date{Time: p.PaidAt},
			Notes:        optional(p.Notes),
			CreatedAt:    p.CreatedAt,
			RunningTotal: p.RunningTotal.String(),
		}
	}
	return servers.PaymentHistory{
		Payments:    payments,
		TotalPaid:   h.TotalPaid.String(),
		Outstanding: h.Outstanding.String(),
	}
}

func attachmentDTO(a queries.AttachmentView) servers.Attachment {
	return servers.Attachment{
		Id:         a.ID.Bytes(),
		EntityType: servers.EntityType(a.EntityType),
		EntityId:   a.EntityID.Bytes(),
		FileName:   a.FileName,
		MimeType:   a.MimeType,
		Size:       a.Size,
		Url:        a.URL,
		CreatedAt:  a.CreatedAt,
	}
}

func freightDTO(f services.Freight) servers.Freight {
	return servers.Freight{
		WeightGrams: f.WeightGrams(),
		Kilograms:   f.Kilograms().String(),
		Cost:        f.Cost().String(),
		Enabled:     f.Enabled(),
		Display:     f.Display(),
	}
}

func partyDTO(p queries.PartyView) servers.Party {
	return servers.Party{
		Id:                p.ID.Bytes(),
		Kind:              servers.PartyKind(p.Kind),
		Name:              p.Name,
		Email:             optional(p.Contact.Email),
		Phone:             optional(p.Contact.Phone),
		Address:           optional(p.Contact.Address),
		TaxId:             optional(p.Contact.TaxID),
		Active:            p.Active,
		DeactivatedAt:     p.DeactivatedAt,
		DeactivatedReason: optional(p.DeactivatedReason),
		CreatedAt:         p.CreatedAt,
	}
}

func productDTO(p queries.ProductView) servers.Product {
	shortages := make([]servers.Shortage, len(p.Shortages))
	for i, s := range p.Shortages {
		shortages[i] = servers.Shortage{Counter: s.Counter, Level: s.Level}
	}
	return servers.Product{
		Id:          p.ID.Bytes(),
		Name:        p.Details.Name,
		Brand:       optional(p.Details.Brand),
		Category:    optional(p.Details.Category),
		CostPrice:   p.Details.CostPrice.String(),
		SalePrice:   p.Details.SalePrice.String(),
		WeightGrams: p.Details.WeightGrams,
		Stock: servers.Stock{
			Bottles: p.Stock.Bottles,
			Caps:    p.Stock.Caps,
			Labels:  p.Stock.Labels,
		},
		Active:            p.Active,
		DeactivatedAt:     p.DeactivatedAt,
		DeactivatedReason: optional(p.DeactivatedReason),
		Shortages:         shortages,
	}
}

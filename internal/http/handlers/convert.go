package handlers

import "dispatch-platform/internal/domain"

func (p pricingDTO) toModel() domain.Pricing {
	return domain.Pricing{
		BasePrice:        p.BasePrice,
		PerKmRate:        p.PerKmRate,
		ExpressSurcharge: p.ExpressSurcharge,
		HeavySurcharge:   p.HeavySurcharge,
		MinPrice:         p.MinPrice,
		MaxPrice:         p.MaxPrice,
		RoundToWholeUnit: p.RoundToWholeUnit,
	}
}

func pricingToResponse(p domain.Pricing) pricingDTO {
	return pricingDTO{
		BasePrice:        p.BasePrice,
		PerKmRate:        p.PerKmRate,
		ExpressSurcharge: p.ExpressSurcharge,
		HeavySurcharge:   p.HeavySurcharge,
		MinPrice:         p.MinPrice,
		MaxPrice:         p.MaxPrice,
		RoundToWholeUnit: p.RoundToWholeUnit,
	}
}

func (l localeDTO) toModel() domain.Locale {
	return domain.Locale{Currency: l.Currency, Timezone: l.Timezone}
}

func tenantToResponse(t *domain.Tenant) tenantDTO {
	return tenantDTO{
		ID:        t.ID,
		Subdomain: t.Subdomain,
		Name:      t.Name,
		Active:    t.Active,
		Pricing:   pricingToResponse(t.Pricing),
		Locale:    localeDTO{Currency: t.Locale.Currency, Timezone: t.Locale.Timezone},
		CreatedAt: t.CreatedAt,
	}
}

func settingsToResponse(t *domain.Tenant) settingsDTO {
	return settingsDTO{
		Pricing: pricingToResponse(t.Pricing),
		Locale:  localeDTO{Currency: t.Locale.Currency, Timezone: t.Locale.Timezone},
	}
}

func (r createDriverRequest) toModel() *domain.Driver {
	return &domain.Driver{
		Name:       r.Name,
		Phone:      r.Phone,
		Employment: r.Employment,
	}
}

func driverToResponse(d domain.Driver) driverDTO {
	return driverDTO{
		ID:            d.ID,
		Name:          d.Name,
		Phone:         d.Phone,
		Employment:    d.Employment,
		Status:        d.Status,
		WalletBalance: d.WalletBalance,
		CreatedAt:     d.CreatedAt,
	}
}

func driversToResponse(list []domain.Driver) []driverDTO {
	out := make([]driverDTO, 0, len(list))
	for _, d := range list {
		out = append(out, driverToResponse(d))
	}
	return out
}

func (p *pointDTO) toModel() *domain.Point {
	if p == nil {
		return nil
	}
	return &domain.Point{Lat: p.Lat, Lon: p.Lon}
}

func pointToResponse(p *domain.Point) *pointDTO {
	if p == nil {
		return nil
	}
	return &pointDTO{Lat: p.Lat, Lon: p.Lon}
}

func shiftToResponse(s *domain.Shift) shiftDTO {
	return shiftDTO{
		ID:            s.ID,
		DriverID:      s.DriverID,
		Status:        s.Status,
		StartedAt:     s.StartedAt,
		EndedAt:       s.EndedAt,
		StartLocation: pointToResponse(s.StartLocation),
		EndLocation:   pointToResponse(s.EndLocation),
		LastLocation:  pointToResponse(s.LastLocation),
		LastSeenAt:    s.LastSeenAt,
	}
}

func activeShiftsToResponse(list []domain.ActiveShift) []activeShiftDTO {
	out := make([]activeShiftDTO, 0, len(list))
	for _, s := range list {
		out = append(out, activeShiftDTO{
			ShiftID:    s.ShiftID,
			DriverID:   s.DriverID,
			DriverName: s.DriverName,
			StartedAt:  s.StartedAt,
			Location:   pointToResponse(s.Location),
		})
	}
	return out
}

func quoteToResponse(q domain.Quote) quoteDTO {
	return quoteDTO{
		DistanceKm:  q.DistanceKm,
		DurationMin: q.DurationMin,
		Price:       q.Price,
		Currency:    q.Currency,
	}
}

func (p partyDTO) toModel() domain.Party {
	return domain.Party{Name: p.Name, Phone: p.Phone, Address: p.Address}
}

func partyToResponse(p domain.Party) partyDTO {
	return partyDTO{Name: p.Name, Phone: p.Phone, Address: p.Address}
}

func (p *proofDTO) toModel() domain.Proof {
	if p == nil {
		return domain.Proof{}
	}
	return domain.Proof{
		PhotoURL:         p.PhotoURL,
		SignatureURL:     p.SignatureURL,
		ConfirmationCode: p.ConfirmationCode,
	}
}

func (r createOrderRequest) toModel(source domain.OrderSource) domain.NewOrder {
	return domain.NewOrder{
		CustomerID: r.CustomerID,
		Sender:     r.Sender.toModel(),
		Recipient:  r.Recipient.toModel(),
		Package: domain.Package{
			Description: r.Package.Description,
			WeightKg:    r.Package.WeightKg,
			Express:     r.Package.Express,
			Heavy:       r.Package.Heavy,
		},
		Source: source,
	}
}

func orderToResponse(o domain.Order) orderDTO {
	dto := orderDTO{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		DriverID:   o.DriverID,
		Sender:     partyToResponse(o.Sender),
		Recipient:  partyToResponse(o.Recipient),
		Package: packageDTO{
			Description: o.Package.Description,
			WeightKg:    o.Package.WeightKg,
			Express:     o.Package.Express,
			Heavy:       o.Package.Heavy,
		},
		Amount:      o.Amount,
		Currency:    o.Currency,
		DistanceKm:  o.DistanceKm,
		DurationMin: o.DurationMin,
		Source:      o.Source,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		AssignedAt:  o.AssignedAt,
		DeliveredAt: o.DeliveredAt,
	}
	if !o.Proof.Empty() {
		dto.Proof = &proofDTO{
			PhotoURL:         o.Proof.PhotoURL,
			SignatureURL:     o.Proof.SignatureURL,
			ConfirmationCode: o.Proof.ConfirmationCode,
		}
	}
	return dto
}

func ordersToResponse(list []domain.Order) []orderDTO {
	out := make([]orderDTO, 0, len(list))
	for _, o := range list {
		out = append(out, orderToResponse(o))
	}
	return out
}

func candidatesToResponse(list []domain.Candidate) []candidateDTO {
	out := make([]candidateDTO, 0, len(list))
	for _, c := range list {
		out = append(out, candidateDTO{DriverID: c.DriverID, Name: c.Name, DistanceKm: c.DistanceKm})
	}
	return out
}

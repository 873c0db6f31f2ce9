package http

import (
	"fmt"
	"time"

	"loadplanner/internal/core/application/usecases/commands"
	"loadplanner/internal/core/application/usecases/queries"
	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/core/domain/model/plan"
	"loadplanner/internal/core/domain/model/truck"
)

// Request bodies.
type (
	LoadPlanRequest struct {
		VehicleCode string   `json:"vehicleCode"`
		Year        *int     `json:"year,omitempty"`
		Month       *int     `json:"month,omitempty"`
		Day         *int     `json:"day,omitempty"`
		Tolerance   *float64 `json:"tolerance,omitempty"`
	}

	ManualItem struct {
		ArticleCode string  `json:"articleCode"`
		Quantity    float64 `json:"quantity"`
		LengthCm    float64 `json:"lengthCm"`
		WidthCm     float64 `json:"widthCm"`
		HeightCm    float64 `json:"heightCm"`
		WeightKg    float64 `json:"weightKg"`
		Label       string  `json:"label"`
		OrderNumber int     `json:"orderNumber"`
		ClientCode  string  `json:"clientCode"`
	}

	ManualLoadPlanRequest struct {
		VehicleCode string       `json:"vehicleCode"`
		Items       []ManualItem `json:"items"`
		Tolerance   *float64     `json:"tolerance,omitempty"`
	}

	TruckConfigUpdate struct {
		LengthCm     float64  `json:"lengthCm"`
		WidthCm      float64  `json:"widthCm"`
		HeightCm     float64  `json:"heightCm"`
		TolerancePct *float64 `json:"tolerancePct,omitempty"`
	}

	ArticleDimensionsUpdate struct {
		Name        string  `json:"name"`
		LengthCm    float64 `json:"lengthCm"`
		WidthCm     float64 `json:"widthCm"`
		HeightCm    float64 `json:"heightCm"`
		WeightKg    float64 `json:"weightKg"`
		UnitsPerBox int     `json:"unitsPerBox"`
	}
)

// Response bodies.
type (
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}

	Container struct {
		LengthCm float64 `json:"lengthCm"`
		WidthCm  float64 `json:"widthCm"`
		HeightCm float64 `json:"heightCm"`
		VolumeM3 float64 `json:"volumeM3"`
	}

	Truck struct {
		Code              string    `json:"code"`
		Description       string    `json:"description"`
		Plate             string    `json:"plate"`
		MaxPayloadKg      float64   `json:"maxPayloadKg"`
		Container         Container `json:"container"`
		TolerancePct      float64   `json:"tolerancePct"`
		InteriorEstimated bool      `json:"interiorEstimated"`
	}

	Box struct {
		ID          int     `json:"id"`
		Label       string  `json:"label"`
		OrderNumber int     `json:"orderNumber"`
		ClientCode  string  `json:"clientCode"`
		ArticleCode string  `json:"articleCode"`
		W           float64 `json:"w"`
		D           float64 `json:"d"`
		H           float64 `json:"h"`
		Weight      float64 `json:"weight"`
		Estimated   bool    `json:"estimated"`
	}

	// PlacedBox reports the box in the orientation it was loaded.
	PlacedBox struct {
		Box
		X float64 `json:"x"`
		Y float64 `json:"y"`
		Z float64 `json:"z"`
	}

	Metrics struct {
		TotalBoxes         int     `json:"totalBoxes"`
		PlacedCount        int     `json:"placedCount"`
		OverflowCount      int     `json:"overflowCount"`
		ContainerVolumeCm3 float64 `json:"containerVolumeCm3"`
		UsedVolumeCm3      float64 `json:"usedVolumeCm3"`
		VolumeOccupancyPct float64 `json:"volumeOccupancyPct"`
		TotalWeightKg      float64 `json:"totalWeightKg"`
		OverflowWeightKg   float64 `json:"overflowWeightKg"`
		MaxPayloadKg       float64 `json:"maxPayloadKg"`
		WeightOccupancyPct float64 `json:"weightOccupancyPct"`
		Status             string  `json:"status"`
	}

	LoadPlan struct {
		Truck        Truck       `json:"truck"`
		Date         string      `json:"date,omitempty"`
		TolerancePct float64     `json:"tolerancePct"`
		Boxes        []Box       `json:"boxes"`
		Placed       []PlacedBox `json:"placed"`
		Overflow     []Box       `json:"overflow"`
		Metrics      Metrics     `json:"metrics"`
	}

	Vehicle struct {
		Truck
		HasOrders bool `json:"hasOrders"`
	}

	VehicleList struct {
		Vehicles []Vehicle `json:"vehicles"`
	}

	ArticleDimensions struct {
		Code        string  `json:"code"`
		Name        string  `json:"name"`
		LengthCm    float64 `json:"lengthCm"`
		WidthCm     float64 `json:"widthCm"`
		HeightCm    float64 `json:"heightCm"`
		WeightKg    float64 `json:"weightKg"`
		UnitsPerBox int     `json:"unitsPerBox"`
		Estimated   bool    `json:"estimated"`
	}

	TruckOrder struct {
		ID            string    `json:"id"`
		OrderYear     int       `json:"orderYear"`
		OrderNumber   int       `json:"orderNumber"`
		LineNumber    int       `json:"lineNumber"`
		ClientCode    string    `json:"clientCode"`
		DriverCode    string    `json:"driverCode"`
		ArticleCode   string    `json:"articleCode"`
		ArticleName   string    `json:"articleName"`
		Units         float64   `json:"units"`
		Boxes         float64   `json:"boxes"`
		WeightPerUnit float64   `json:"weightPerUnit"`
		HasDimensions bool      `json:"hasDimensions"`
		Dimensions    Container `json:"dimensions"`
	}

	TruckOrders struct {
		VehicleCode string       `json:"vehicleCode"`
		Date        string       `json:"date"`
		TotalLines  int          `json:"totalLines"`
		Orders      []TruckOrder `json:"orders"`
	}

	LoadHistoryEntry struct {
		ID          string    `json:"id"`
		VehicleCode string    `json:"vehicleCode"`
		Date        string    `json:"date"`
		Metrics     Metrics   `json:"metrics"`
		CreatedBy   string    `json:"createdBy"`
		CreatedAt   time.Time `json:"createdAt"`
	}

	LoadHistory struct {
		History []LoadHistoryEntry `json:"history"`
	}
)

func toManualItems(items []ManualItem) []cargo.ManualItem {
	out := make([]cargo.ManualItem, len(items))
	for i, item := range items {
		out[i] = cargo.ManualItem{
			ArticleCode: item.ArticleCode,
			Quantity:    item.Quantity,
			LengthCm:    item.LengthCm,
			WidthCm:     item.WidthCm,
			HeightCm:    item.HeightCm,
			WeightKg:    item.WeightKg,
			Label:       item.Label,
			OrderNumber: item.OrderNumber,
			ClientCode:  item.ClientCode,
		}
	}
	return out
}

func fromContainer(c truck.Container) Container {
	return Container{
		LengthCm: c.LengthCm(),
		WidthCm:  c.WidthCm(),
		HeightCm: c.HeightCm(),
		VolumeM3: kernel.Round2(c.VolumeM3()),
	}
}

func fromTruck(t *truck.Truck) Truck {
	return Truck{
		Code:              t.Code(),
		Description:       t.Description(),
		Plate:             t.Plate(),
		MaxPayloadKg:      t.MaxPayloadKg(),
		Container:         fromContainer(t.Container()),
		TolerancePct:      t.TolerancePct(),
		InteriorEstimated: t.InteriorEstimated(),
	}
}

func fromBox(b cargo.Box) Box {
	ref := b.Reference()
	size := b.Size()
	return Box{
		ID:          b.ID(),
		Label:       ref.Label,
		OrderNumber: ref.OrderNumber,
		ClientCode:  ref.ClientCode,
		ArticleCode: ref.ArticleCode,
		W:           size.Width(),
		D:           size.Depth(),
		H:           size.Height(),
		Weight:      b.WeightKg(),
		Estimated:   ref.Estimated,
	}
}

func fromBoxes(boxes []cargo.Box) []Box {
	out := make([]Box, len(boxes))
	for i, b := range boxes {
		out[i] = fromBox(b)
	}
	return out
}

func fromPlacedBox(p cargo.PlacedBox) PlacedBox {
	box := fromBox(p.Box())
	size := p.Size()
	box.W, box.D, box.H = size.Width(), size.Depth(), size.Height()
	pos := p.Position()
	return PlacedBox{
		Box: box,
		X:   pos.X(),
		Y:   pos.Y(),
		Z:   pos.Z(),
	}
}

func fromMetrics(m plan.Metrics) Metrics {
	return Metrics{
		TotalBoxes:         m.TotalBoxes,
		PlacedCount:        m.PlacedCount,
		OverflowCount:      m.OverflowCount,
		ContainerVolumeCm3: m.ContainerVolumeCm3,
		UsedVolumeCm3:      m.UsedVolumeCm3,
		VolumeOccupancyPct: m.VolumeOccupancyPct,
		TotalWeightKg:      m.TotalWeightKg,
		OverflowWeightKg:   m.OverflowWeightKg,
		MaxPayloadKg:       m.MaxPayloadKg,
		WeightOccupancyPct: m.WeightOccupancyPct,
		Status:             m.Status.String(),
	}
}

func fromPlanResponse(resp commands.PlanResponse) LoadPlan {
	out := LoadPlan{
		Truck:        fromTruck(resp.Truck),
		TolerancePct: resp.TolerancePct,
		Boxes:        fromBoxes(resp.Boxes),
		Overflow:     fromBoxes(resp.Result.Overflow()),
		Metrics:      fromMetrics(resp.Result.Metrics()),
	}
	if resp.Date != nil {
		out.Date = resp.Date.String()
	}

	placed := resp.Result.Placed()
	out.Placed = make([]PlacedBox, len(placed))
	for i, p := range placed {
		out.Placed[i] = fromPlacedBox(p)
	}
	return out
}

func fromVehicles(vehicles []queries.GetVehiclesQueryResponse) VehicleList {
	out := VehicleList{Vehicles: make([]Vehicle, len(vehicles))}
	for i, v := range vehicles {
		out.Vehicles[i] = Vehicle{
			Truck:     fromTruck(v.Truck),
			HasOrders: v.HasOrders,
		}
	}
	return out
}

func fromArticle(a cargo.Article) ArticleDimensions {
	box := a.Box()
	return ArticleDimensions{
		Code:        a.Code(),
		Name:        a.Name(),
		LengthCm:    box.Width(),
		WidthCm:     box.Depth(),
		HeightCm:    box.Height(),
		WeightKg:    a.WeightKg(),
		UnitsPerBox: a.UnitsPerBox(),
		Estimated:   a.Estimated(),
	}
}

func fromTruckOrders(vehicleCode string, date kernel.PlanDate, lines []queries.GetTruckOrdersQueryResponse) TruckOrders {
	out := TruckOrders{
		VehicleCode: vehicleCode,
		Date:        date.String(),
		TotalLines:  len(lines),
		Orders:      make([]TruckOrder, len(lines)),
	}
	for i, l := range lines {
		out.Orders[i] = TruckOrder{
			ID:            fmt.Sprintf("%d-%d-%d", l.OrderYear, l.OrderNumber, l.LineNumber),
			OrderYear:     l.OrderYear,
			OrderNumber:   l.OrderNumber,
			LineNumber:    l.LineNumber,
			ClientCode:    l.ClientCode,
			DriverCode:    l.DriverCode,
			ArticleCode:   l.ArticleCode,
			ArticleName:   l.ArticleName,
			Units:         l.Units,
			Boxes:         l.Packages,
			WeightPerUnit: l.UnitWeightKg,
			HasDimensions: l.HasDimensions,
			Dimensions: Container{
				LengthCm: l.Box.Width(),
				WidthCm:  l.Box.Depth(),
				HeightCm: l.Box.Height(),
			},
		}
	}
	return out
}

func fromLoadHistory(entries []queries.GetLoadHistoryQueryResponse) LoadHistory {
	out := LoadHistory{History: make([]LoadHistoryEntry, len(entries))}
	for i, e := range entries {
		out.History[i] = LoadHistoryEntry{
			ID:          e.ID.String(),
			VehicleCode: e.VehicleCode,
			Date:        e.PlanDate.String(),
			Metrics:     fromMetrics(e.Metrics),
			CreatedBy:   e.CreatedBy,
			CreatedAt:   e.CreatedAt,
		}
	}
	return out
}

package services

import (
	"fmt"
	"strings"
)

// ItemType identifies which kind of component a catalog record describes.
type ItemType string

const (
	TypeModule    ItemType = "module"
	TypeCabinet   ItemType = "cabinet"
	TypeReady     ItemType = "ready"
	TypeCard      ItemType = "card"
	TypePSU       ItemType = "psu"
	TypeProcessor ItemType = "processor"
)

// ItemTypes lists every component type in display order.
var ItemTypes = []ItemType{TypeModule, TypeCabinet, TypeReady, TypeCard, TypePSU, TypeProcessor}

// Label returns the human readable name of the item type.
func (t ItemType) Label() string {
	switch t {
	case TypeModule:
		return "Module"
	case TypeCabinet:
		return "Cabinet"
	case TypeReady:
		return "Ready Unit"
	case TypeCard:
		return "Receiving Card"
	case TypePSU:
		return "Power Supply"
	case TypeProcessor:
		return "Processor"
	}
	return string(t)
}

// HasPanelSpecs reports whether pitch, indoor and display specs are
// meaningful for this type.
func (t ItemType) HasPanelSpecs() bool {
	return t == TypeModule || t == TypeReady
}

// HasDimensions reports whether width and height are meaningful for this type.
func (t ItemType) HasDimensions() bool {
	return t == TypeModule || t == TypeCabinet || t == TypeReady
}

// ParseItemType returns the item type for s and whether it is known.
func ParseItemType(s string) (ItemType, bool) {
	t := ItemType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ItemTypes {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// Currency is the currency an item is purchased in.
type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
)

// ParseCurrency maps s to a supported currency. Anything other than USD is
// treated as INR.
func ParseCurrency(s string) Currency {
	if strings.EqualFold(strings.TrimSpace(s), string(CurrencyUSD)) {
		return CurrencyUSD
	}
	return CurrencyINR
}

// DefaultExchangeRate is the INR-per-USD rate used when none is configured.
const DefaultExchangeRate = 83.0

// CatalogItem is the flat storage shape of an inventory record. Fields that
// are not meaningful for the item's type are simply ignored.
type CatalogItem struct {
	ID          string   `json:"id"`
	Type        ItemType `json:"type"`
	Brand       string   `json:"brand"`
	Model       string   `json:"model"`
	Vendor      string   `json:"vendor"`
	Pitch       float64  `json:"pitch"`
	Width       float64  `json:"width"`
	Height      float64  `json:"height"`
	Price       float64  `json:"price"`
	Carriage    float64  `json:"carriage"`
	Currency    Currency `json:"currency"`
	Indoor      bool     `json:"indoor"`
	Brightness  string   `json:"brightness"`
	RefreshRate string   `json:"refreshRate"`
	ScanRate    string   `json:"scanRate"`
	GrayScale   string   `json:"grayScale"`
	Stock       int      `json:"stock"`
}

// Label returns "Brand Model".
func (c CatalogItem) Label() string {
	return strings.TrimSpace(c.Brand + " " + c.Model)
}

// ItemBase holds the fields every component carries.
type ItemBase struct {
	ID       string
	Brand    string
	Model    string
	Vendor   string
	Price    float64
	Carriage float64
	Currency Currency
	Stock    int
}

// Landed returns price plus carriage in the item's own currency.
func (b ItemBase) Landed() float64 {
	return b.Price + b.Carriage
}

// Label returns "Brand Model".
func (b ItemBase) Label() string {
	return strings.TrimSpace(b.Brand + " " + b.Model)
}

// DisplaySpecs are free-text specs shown on quotes, never computed with.
type DisplaySpecs struct {
	Brightness  string
	RefreshRate string
	ScanRate    string
	GrayScale   string
}

// Component is implemented by every catalog variant.
type Component interface {
	Kind() ItemType
	Base() ItemBase
}

type Module struct {
	ItemBase
	Pitch  float64
	Width  float64
	Height float64
	Indoor bool
	Specs  DisplaySpecs
}

type Cabinet struct {
	ItemBase
	Width  float64
	Height float64
}

// ReadyUnit is a pre-assembled panel that stands in for a module+cabinet pair.
type ReadyUnit struct {
	ItemBase
	Pitch  float64
	Width  float64
	Height float64
	Indoor bool
	Specs  DisplaySpecs
}

type Card struct{ ItemBase }

type PSU struct{ ItemBase }

type Processor struct{ ItemBase }

func (m Module) Kind() ItemType    { return TypeModule }
func (c Cabinet) Kind() ItemType   { return TypeCabinet }
func (r ReadyUnit) Kind() ItemType { return TypeReady }
func (c Card) Kind() ItemType      { return TypeCard }
func (p PSU) Kind() ItemType       { return TypePSU }
func (p Processor) Kind() ItemType { return TypeProcessor }

func (m Module) Base() ItemBase    { return m.ItemBase }
func (c Cabinet) Base() ItemBase   { return c.ItemBase }
func (r ReadyUnit) Base() ItemBase { return r.ItemBase }
func (c Card) Base() ItemBase      { return c.ItemBase }
func (p PSU) Base() ItemBase       { return p.ItemBase }
func (p Processor) Base() ItemBase { return p.ItemBase }

// Component converts the flat record into its typed variant.
func (c CatalogItem) Component() (Component, error) {
	base := ItemBase{
		ID:       c.ID,
		Brand:    c.Brand,
		Model:    c.Model,
		Vendor:   c.Vendor,
		Price:    c.Price,
		Carriage: c.Carriage,
		Currency: ParseCurrency(string(c.Currency)),
		Stock:    c.Stock,
	}
	specs := DisplaySpecs{
		Brightness:  c.Brightness,
		RefreshRate: c.RefreshRate,
		ScanRate:    c.ScanRate,
		GrayScale:   c.GrayScale,
	}

	switch c.Type {
	case TypeModule:
		return Module{ItemBase: base, Pitch: c.Pitch, Width: c.Width, Height: c.Height, Indoor: c.Indoor, Specs: specs}, nil
	case TypeCabinet:
		return Cabinet{ItemBase: base, Width: c.Width, Height: c.Height}, nil
	case TypeReady:
		return ReadyUnit{ItemBase: base, Pitch: c.Pitch, Width: c.Width, Height: c.Height, Indoor: c.Indoor, Specs: specs}, nil
	case TypeCard:
		return Card{base}, nil
	case TypePSU:
		return PSU{base}, nil
	case TypeProcessor:
		return Processor{base}, nil
	}
	return nil, fmt.Errorf("unknown item type %q", c.Type)
}

// Catalog is an immutable, typed snapshot of the inventory.
type Catalog struct {
	Modules    []Module
	Cabinets   []Cabinet
	Ready      []ReadyUnit
	Cards      []Card
	PSUs       []PSU
	Processors []Processor
}

// NewCatalog partitions flat records into typed slices, preserving order.
// Records with an unknown type are skipped.
func NewCatalog(items []CatalogItem) Catalog {
	var cat Catalog
	for _, it := range items {
		comp, err := it.Component()
		if err != nil {
			continue
		}
		switch v := comp.(type) {
		case Module:
			cat.Modules = append(cat.Modules, v)
		case Cabinet:
			cat.Cabinets = append(cat.Cabinets, v)
		case ReadyUnit:
			cat.Ready = append(cat.Ready, v)
		case Card:
			cat.Cards = append(cat.Cards, v)
		case PSU:
			cat.PSUs = append(cat.PSUs, v)
		case Processor:
			cat.Processors = append(cat.Processors, v)
		}
	}
	return cat
}

// Len returns the number of components in the catalog.
func (c Catalog) Len() int {
	return len(c.Modules) + len(c.Cabinets) + len(c.Ready) + len(c.Cards) + len(c.PSUs) + len(c.Processors)
}

func (c Catalog) Module(id string) (Module, bool)       { return findByID(c.Modules, id) }
func (c Catalog) Cabinet(id string) (Cabinet, bool)     { return findByID(c.Cabinets, id) }
func (c Catalog) ReadyUnit(id string) (ReadyUnit, bool) { return findByID(c.Ready, id) }
func (c Catalog) Card(id string) (Card, bool)           { return findByID(c.Cards, id) }
func (c Catalog) PSU(id string) (PSU, bool)             { return findByID(c.PSUs, id) }
func (c Catalog) Processor(id string) (Processor, bool) { return findByID(c.Processors, id) }

func findByID[T Component](items []T, id string) (T, bool) {
	var zero T
	if id == "" {
		return zero, false
	}
	for _, it := range items {
		if it.Base().ID == id {
			return it, true
		}
	}
	return zero, false
}

package main

import (
	"net/http"

	"travelrest/pkg/api"
	"travelrest/pkg/hotel"
	"travelrest/pkg/order"
)

type handlers struct {
	hotels *api.Resource[hotel.Hotel, hotel.Representation]
	orders *api.Resource[order.Order, order.Representation]
}

func (h handlers) routes() []api.Route {
	return []api.Route{
		{Name: api.RouteName("hotels", "index"), Method: http.MethodGet, Pattern: "/hotels", Handler: h.listHotels},
		{Name: api.RouteName("hotels", "get"), Method: http.MethodGet, Pattern: "/hotels/{id}", Handler: h.getHotel},
		{Name: api.RouteName("hotels", "add"), Method: http.MethodPost, Pattern: "/hotels", Handler: h.addHotel},
		{Name: api.RouteName("orders", "index"), Method: http.MethodGet, Pattern: "/orders", Handler: h.listOrders},
		{Name: api.RouteName("orders", "get"), Method: http.MethodGet, Pattern: "/orders/{id}", Handler: h.getOrder},
		{Name: api.RouteName("orders", "add"), Method: http.MethodPost, Pattern: "/orders", Handler: h.addOrder},
	}
}

// listHotels links every stored hotel.
// @Summary List hotels
// @Tags hotels
// @Produce json
// @Success 200 {array} api.Link
// @Failure 500 {object} api.ErrorResponse
// @Router /hotels [get]
func (h handlers) listHotels(w http.ResponseWriter, r *http.Request) { h.hotels.Index(w, r) }

// getHotel returns the public view of one hotel.
// @Summary Get hotel
// @Description A missing hotel is answered with an empty 404
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} hotel.Representation
// @Failure 404
// @Failure 500 {object} api.ErrorResponse
// @Router /hotels/{id} [get]
func (h handlers) getHotel(w http.ResponseWriter, r *http.Request) { h.hotels.Get(w, r) }

// addHotel stores a hotel.
// @Summary Create hotel
// @Description Stores the hotel and returns its canonical URI in Location
// @Tags hotels
// @Accept json
// @Produce json
// @Param hotel body hotel.Hotel true "Hotel"
// @Success 201
// @Header 201 {string} Location "Canonical URI of the hotel"
// @Failure 400 {object} api.ErrorResponse
// @Failure 500 {object} api.ErrorResponse
// @Router /hotels [post]
func (h handlers) addHotel(w http.ResponseWriter, r *http.Request) { h.hotels.Add(w, r) }

// listOrders links every stored order.
// @Summary List orders
// @Tags orders
// @Produce json
// @Success 200 {array} api.Link
// @Failure 500 {object} api.ErrorResponse
// @Router /orders [get]
func (h handlers) listOrders(w http.ResponseWriter, r *http.Request) { h.orders.Index(w, r) }

// getOrder returns the public view of one order.
// @Summary Get order
// @Description A missing order is answered with an empty 404
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} order.Representation
// @Failure 404
// @Failure 500 {object} api.ErrorResponse
// @Router /orders/{id} [get]
func (h handlers) getOrder(w http.ResponseWriter, r *http.Request) { h.orders.Get(w, r) }

// addOrder stores an order as unpaid.
// @Summary Create order
// @Description Stores the order and returns its canonical URI in Location
// @Tags orders
// @Accept json
// @Produce json
// @Param order body order.Order true "Order"
// @Success 201
// @Header 201 {string} Location "Canonical URI of the order"
// @Failure 400 {object} api.ErrorResponse
// @Failure 500 {object} api.ErrorResponse
// @Router /orders [post]
func (h handlers) addOrder(w http.ResponseWriter, r *http.Request) { h.orders.Add(w, r) }

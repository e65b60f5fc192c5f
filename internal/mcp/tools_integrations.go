package mcp

import (
	"context"
	"encoding/json"

	"github.com/anyulbade/card-rewards-gateway/internal/dto"
	"github.com/anyulbade/card-rewards-gateway/internal/service"
)

type bookingIDArgs struct {
	BookingID int `json:"booking_id" validate:"required,min=1" desc:"Booking ID"`
}

type modifyBookingArgs struct {
	BookingID    int                     `json:"booking_id" validate:"required,min=1" desc:"Booking ID"`
	Modification dto.BookingModification `json:"modification" desc:"New date, reason and extra services"`
}

func registerBookingTools(r *Registry, svc *service.BookingService) {
	addTool(r, "modify_booking",
		"Change the date or services of an existing booking.",
		[]string{"bookings", "travel"},
		func(ctx context.Context, a modifyBookingArgs) (json.RawMessage, error) {
			return svc.ModifyBooking(ctx, a.BookingID, a.Modification)
		})

	addTool(r, "get_booking_status",
		"Get the current status of a booking.",
		[]string{"bookings", "travel"},
		func(ctx context.Context, a bookingIDArgs) (json.RawMessage, error) {
			return svc.GetBookingStatus(ctx, a.BookingID)
		})
}

type tokenIDArgs struct {
	TokenID string `json:"token_id" validate:"required" desc:"Card token ID"`
}

type createTokenArgs struct {
	TokenRequest dto.CardTokenRequest `json:"token_request" desc:"Card, token type and expiry"`
}

type cardTokensArgs struct {
	CardID int `json:"card_id" validate:"required,min=1" desc:"Credit card ID"`
	dto.TokenListParams
}

type customerTokensArgs struct {
	CustomerID int `json:"customer_id" validate:"required,min=1" desc:"Customer ID"`
	dto.TokenListParams
}

func registerTokenTools(r *Registry, svc *service.TokenService) {
	addTool(r, "create_card_token",
		"Create a single-use, multi-use or recurring token for a credit card.",
		[]string{"tokenization", "security", "payments"},
		func(ctx context.Context, a createTokenArgs) (json.RawMessage, error) {
			return svc.CreateCardToken(ctx, a.TokenRequest)
		})

	addTool(r, "validate_card_token",
		"Check whether a card token is still valid.",
		[]string{"tokenization", "security"},
		func(ctx context.Context, a tokenIDArgs) (json.RawMessage, error) {
			return svc.ValidateCardToken(ctx, a.TokenID)
		})

	addTool(r, "get_token_details",
		"Get a card token by ID.",
		[]string{"tokenization"},
		func(ctx context.Context, a tokenIDArgs) (json.RawMessage, error) {
			return svc.GetToken(ctx, a.TokenID)
		})

	addTool(r, "deactivate_card_token",
		"Deactivate a card token.",
		[]string{"tokenization", "security"},
		func(ctx context.Context, a tokenIDArgs) (json.RawMessage, error) {
			return svc.DeactivateCardToken(ctx, a.TokenID)
		})

	addTool(r, "get_card_tokens",
		"List tokens issued for a credit card.",
		[]string{"tokenization", "credit_cards"},
		func(ctx context.Context, a cardTokensArgs) (json.RawMessage, error) {
			return svc.GetCardTokens(ctx, a.CardID, a.TokenListParams)
		})

	addTool(r, "get_customer_tokens",
		"List tokens across all of a customer's cards.",
		[]string{"tokenization", "customers"},
		func(ctx context.Context, a customerTokensArgs) (json.RawMessage, error) {
			return svc.GetCustomerTokens(ctx, a.CustomerID, a.TokenListParams)
		})
}

type bookingReferenceArgs struct {
	BookingReference string `json:"booking_reference" validate:"required" desc:"Booking reference"`
}

type hotelSearchArgs struct {
	Search dto.HotelSearchRequest `json:"search" desc:"City, dates, rooms and guests"`
}

type hotelBookingArgs struct {
	Booking dto.HotelBookingRequest `json:"booking" desc:"Hotel, customer, dates and guest details"`
}

type flightSearchArgs struct {
	Search dto.FlightSearchRequest `json:"search" desc:"Route, dates, passengers and cabin"`
}

type flightBookingArgs struct {
	Booking dto.FlightBookingRequest `json:"booking" desc:"Flight, customer and passengers"`
}

type travelPackageSearchArgs struct {
	Search dto.TravelPackageSearchRequest `json:"search" desc:"Destination, dates, travelers and budget"`
}

func registerTravelTools(r *Registry, svc *service.TravelService) {
	addTool(r, "search_hotels",
		"Search hotels by city, dates and occupancy.",
		[]string{"travel", "hotels", "search"},
		func(ctx context.Context, a hotelSearchArgs) (json.RawMessage, error) {
			return svc.SearchHotels(ctx, a.Search)
		})

	addTool(r, "book_hotel",
		"Book a hotel stay for a customer.",
		[]string{"travel", "hotels", "booking"},
		func(ctx context.Context, a hotelBookingArgs) (json.RawMessage, error) {
			return svc.BookHotel(ctx, a.Booking)
		})

	addTool(r, "get_hotel_booking_details",
		"Get a hotel booking by reference.",
		[]string{"travel", "hotels"},
		func(ctx context.Context, a bookingReferenceArgs) (json.RawMessage, error) {
			return svc.GetHotelBooking(ctx, a.BookingReference)
		})

	addTool(r, "get_available_cities",
		"List cities with bookable hotels.",
		[]string{"travel", "hotels", "reference_data"},
		func(ctx context.Context, _ noArgs) (json.RawMessage, error) {
			return svc.GetAvailableCities(ctx)
		})

	addTool(r, "search_flights",
		"Search flights by route, dates and passengers.",
		[]string{"travel", "flights", "search"},
		func(ctx context.Context, a flightSearchArgs) (json.RawMessage, error) {
			return svc.SearchFlights(ctx, a.Search)
		})

	addTool(r, "book_flight",
		"Book a flight for a customer and passengers.",
		[]string{"travel", "flights", "booking"},
		func(ctx context.Context, a flightBookingArgs) (json.RawMessage, error) {
			return svc.BookFlight(ctx, a.Booking)
		})

	addTool(r, "get_flight_booking_details",
		"Get a flight booking by reference.",
		[]string{"travel", "flights"},
		func(ctx context.Context, a bookingReferenceArgs) (json.RawMessage, error) {
			return svc.GetFlightBooking(ctx, a.BookingReference)
		})

	addTool(r, "get_available_airports",
		"List airports served by the flight integration.",
		[]string{"travel", "flights", "reference_data"},
		func(ctx context.Context, _ noArgs) (json.RawMessage, error) {
			return svc.GetAvailableAirports(ctx)
		})

	addTool(r, "search_travel_packages",
		"Search bundled flight and hotel packages.",
		[]string{"travel", "packages", "search"},
		func(ctx context.Context, a travelPackageSearchArgs) (json.RawMessage, error) {
			return svc.SearchTravelPackages(ctx, a.Search)
		})
}

type productIDArgs struct {
	ProductID string `json:"product_id" validate:"required" desc:"Product ID"`
}

type orderIDArgs struct {
	OrderID string `json:"order_id" validate:"required" desc:"Order ID"`
}

type productSearchArgs struct {
	Search dto.ShoppingProductSearch `json:"search" desc:"Query, category, brand and price filters"`
}

type cartItemArgs struct {
	CartItem dto.ShoppingCartItem `json:"cart_item" desc:"Customer, product and quantity"`
}

type orderArgs struct {
	Order dto.ShoppingOrder `json:"order" desc:"Customer, shipping address and payment method"`
}

func registerShoppingTools(r *Registry, svc *service.ShoppingService) {
	addTool(r, "search_shopping_products",
		"Search the shopping catalog.",
		[]string{"shopping", "search"},
		func(ctx context.Context, a productSearchArgs) (json.RawMessage, error) {
			return svc.SearchProducts(ctx, a.Search)
		})

	addTool(r, "get_product_details",
		"Get a product by ID.",
		[]string{"shopping"},
		func(ctx context.Context, a productIDArgs) (json.RawMessage, error) {
			return svc.GetProduct(ctx, a.ProductID)
		})

	addTool(r, "get_shopping_categories",
		"List shopping categories.",
		[]string{"shopping", "reference_data"},
		func(ctx context.Context, _ noArgs) (json.RawMessage, error) {
			return svc.GetCategories(ctx)
		})

	addTool(r, "get_shopping_brands",
		"List shopping brands.",
		[]string{"shopping", "reference_data"},
		func(ctx context.Context, _ noArgs) (json.RawMessage, error) {
			return svc.GetBrands(ctx)
		})

	addTool(r, "add_to_shopping_cart",
		"Add a product to a customer's cart.",
		[]string{"shopping", "cart"},
		func(ctx context.Context, a cartItemArgs) (json.RawMessage, error) {
			return svc.AddToCart(ctx, a.CartItem)
		})

	addTool(r, "create_shopping_order",
		"Place an order for a customer's cart, paid by card or points.",
		[]string{"shopping", "orders", "payments"},
		func(ctx context.Context, a orderArgs) (json.RawMessage, error) {
			return svc.CreateOrder(ctx, a.Order)
		})

	addTool(r, "get_shopping_order_details",
		"Get a shopping order by ID.",
		[]string{"shopping", "orders"},
		func(ctx context.Context, a orderIDArgs) (json.RawMessage, error) {
			return svc.GetOrder(ctx, a.OrderID)
		})
}

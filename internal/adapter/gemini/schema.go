package gemini

import "github.com/google/generative-ai-go/genai"

// flightSchema mirrors the domain.Flight JSON shape. Every field is required
// so the model cannot return partial flights.
var flightSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"id":                {Type: genai.TypeString},
		"airline":           {Type: genai.TypeString},
		"flightNumber":      {Type: genai.TypeString},
		"origin":            {Type: genai.TypeString},
		"destination":       {Type: genai.TypeString},
		"iataDepartureCode": {Type: genai.TypeString, Description: "Three letter IATA code of the departure airport."},
		"iataArrivalCode":   {Type: genai.TypeString, Description: "Three letter IATA code of the arrival airport."},
		"departureTime":     {Type: genai.TypeString},
		"arrivalTime":       {Type: genai.TypeString},
		"price":             {Type: genai.TypeInteger, Description: "Total fare in Indian Rupees."},
		"class":             {Type: genai.TypeString, Description: "One of Economy, Business, First."},
		"duration":          {Type: genai.TypeString, Description: "Formatted as e.g. 10h 00m."},
		"stops":             {Type: genai.TypeInteger},
		"baggageCabin":      {Type: genai.TypeString},
		"baggageChecked":    {Type: genai.TypeString},
	},
	Required: []string{
		"id", "airline", "flightNumber", "origin", "destination",
		"iataDepartureCode", "iataArrivalCode", "departureTime", "arrivalTime",
		"price", "class", "duration", "stops", "baggageCabin", "baggageChecked",
	},
}

// flightListSchema is the search gateway's response contract: a plain array
// of flights.
var flightListSchema = &genai.Schema{
	Type:  genai.TypeArray,
	Items: flightSchema,
}

// chatReplySchema is the concierge's response contract: a conversational
// text answer plus an optional list of suggested flights.
var chatReplySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"text": {
			Type:        genai.TypeString,
			Description: "The conversational reply shown to the traveler.",
		},
		"suggestedFlights": {
			Type:  genai.TypeArray,
			Items: flightSchema,
		},
	},
	Required: []string{"text"},
}

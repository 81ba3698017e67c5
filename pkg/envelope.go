package pkg

// SuccessEnvelope wraps every successful response body.
type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Count   *int `json:"count,omitempty"`
}

func Success(data any) SuccessEnvelope {
	return SuccessEnvelope{Success: true, Data: data}
}

// SuccessList adds the item count for list endpoints.
func SuccessList(data any, count int) SuccessEnvelope {
	return SuccessEnvelope{Success: true, Data: data, Count: &count}
}

package domain

import "fmt"

const (
	SomethingWentWrongMessage = "Something went wrong"
	DeliveryFailedMessage     = "Failed to deliver the reply"
	backendFailurePrefix      = "Request to backend was not successful: "
	errorHappenedPrefix       = "Error happened! "
)

// BackendFailureText is shown when a backend answered with a non-2xx status.
func BackendFailureText(detail string) string {
	return backendFailurePrefix + detail
}

// ErrorHappenedText is shown for transport and decode errors.
func ErrorHappenedText(err error) string {
	return errorHappenedPrefix + err.Error()
}

func PanicText(v any) string {
	return errorHappenedPrefix + fmt.Sprint(v)
}

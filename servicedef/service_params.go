package servicedef

// JSON field names used by the user service in requests and responses.
const (
	FieldFirstName = "firstName"
	FieldPhone     = "phone"
	FieldAddress   = "address"
	FieldAuthToken = "authToken"
	FieldCode      = "code"
	FieldMessage   = "message"
)

const (
	StatusCreated    = 201
	StatusBadRequest = 400
)

// Error messages returned by the service in the "message" field of a 400 response. They are
// compared verbatim, so they must match the service's localized text exactly.
const (
	MessageInvalidFirstNameFormat = "Имя пользователя введено некорректно. Имя может содержать только " +
		"русские или латинские буквы, длина должна быть не менее 2 и не более 15 символов"
	MessageMissingParameters = "Не все необходимые параметры были переданы"
)

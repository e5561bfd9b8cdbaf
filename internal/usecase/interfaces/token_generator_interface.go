package interfaces

//go:generate mockgen -source=token_generator_interface.go -destination=mocks/token_generator_interface_mock.go -package=mock_interfaces

// ITokenGenerator produces the short quote tokens handed to suppliers.
//
// Tokens are typed by hand, so they are short; they only grant access together with an invited tax id.
type ITokenGenerator interface {
	Generate() (string, error)
}

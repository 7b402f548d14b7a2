package moolah

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator"
	"github.com/shopspring/decimal"
)

// Wire names of the create-transaction parameters.
const (
	ParamCoin     = "coin"
	ParamAmount   = "amount"
	ParamCurrency = "currency"
	ParamProduct  = "product"
	ParamIPNExtra = "ipn_extra"
	ParamGUID     = "guid"
)

// TransactionRequest is the parameter object for CreateTransaction.
// Coin, Amount, Currency and Product are required; a value made only of
// whitespace counts as missing. Values are sent as given.
type TransactionRequest struct {
	Coin     string `param:"coin" validate:"required,notblank"`
	Amount   string `param:"amount" validate:"required,notblank"`
	Currency string `param:"currency" validate:"required,notblank"`
	Product  string `param:"product" validate:"required,notblank"`

	// IPNExtra is echoed back by Moolah in the payment notification.
	IPNExtra string `param:"ipn_extra"`
}

// NewTransactionRequest builds a request from a mapping keyed by wire name.
// Unknown keys are ignored.
func NewTransactionRequest(params map[string]string) TransactionRequest {
	return TransactionRequest{
		Coin:     params[ParamCoin],
		Amount:   params[ParamAmount],
		Currency: params[ParamCurrency],
		Product:  params[ParamProduct],
		IPNExtra: params[ParamIPNExtra],
	}
}

// BuildTransactionRequest hands a zero request to build and returns the
// result once it validates.
func BuildTransactionRequest(build func(t *TransactionRequest)) (TransactionRequest, error) {
	var req TransactionRequest
	if build != nil {
		build(&req)
	}
	if err := req.Validate(); err != nil {
		return TransactionRequest{}, err
	}
	return req, nil
}

// Validate reports every missing required field in a single
// INCOMPLETE_PARAMETERS error.
func (r TransactionRequest) Validate() error {
	return validateParams(r)
}

// Params returns the request keyed by wire name. Empty optional fields are
// left out.
func (r TransactionRequest) Params() map[string]string {
	params := map[string]string{
		ParamCoin:     r.Coin,
		ParamAmount:   r.Amount,
		ParamCurrency: r.Currency,
		ParamProduct:  r.Product,
	}
	if r.IPNExtra != "" {
		params[ParamIPNExtra] = r.IPNExtra
	}
	return params
}

func (r TransactionRequest) AmountDecimal() (decimal.Decimal, error) {
	return decimal.NewFromString(r.Amount)
}

// QueryRequest identifies the transaction to look up. APIKey is accepted for
// parity with the remote API but the client's configured key is always the
// one sent.
type QueryRequest struct {
	APIKey string
	GUID   string `param:"guid" validate:"required,notblank"`
}

func (q QueryRequest) Validate() error {
	return validateParams(q)
}

func (q QueryRequest) Params() map[string]string {
	return map[string]string{ParamGUID: q.GUID}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("param"), ",", 2)[0]
		if name == "" {
			return field.Name
		}
		return name
	})
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		panic(err)
	}
	return v
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateParams(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, fieldErr.Field())
	}
	return NewIncompleteParametersError(fields...)
}

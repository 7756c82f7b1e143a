package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ArchitSaxena349/credit-approval-system/internal/creditapi"
)

type CustomerRegistrar interface {
	RegisterCustomer(ctx context.Context, req creditapi.RegisterRequest) (*creditapi.RegisterResponse, error)
}

type RegisterHandler struct {
	api CustomerRegistrar
}

func NewRegisterHandler(api CustomerRegistrar) *RegisterHandler {
	return &RegisterHandler{api: api}
}

// registerForm echoes the raw submitted values back into the form so a failed
// submission stays editable.
type registerForm struct {
	FirstName     string
	LastName      string
	Age           string
	MonthlyIncome string
	PhoneNumber   string
}

type registerView struct {
	Form   registerForm
	Result *creditapi.RegisterResponse
	Error  string
}

func (h *RegisterHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, "register", registerView{})
}

func (h *RegisterHandler) Submit(c *gin.Context) {
	form := registerForm{
		FirstName:     strings.TrimSpace(c.PostForm("first_name")),
		LastName:      strings.TrimSpace(c.PostForm("last_name")),
		Age:           strings.TrimSpace(c.PostForm("age")),
		MonthlyIncome: strings.TrimSpace(c.PostForm("monthly_income")),
		PhoneNumber:   strings.TrimSpace(c.PostForm("phone_number")),
	}

	age, ageErr := strconv.Atoi(form.Age)
	income, incomeErr := strconv.ParseInt(form.MonthlyIncome, 10, 64)
	if form.FirstName == "" || form.LastName == "" || form.PhoneNumber == "" || ageErr != nil || incomeErr != nil {
		c.HTML(http.StatusOK, "register", registerView{
			Form:  form,
			Error: "All fields are required; age and monthly income must be whole numbers.",
		})
		return
	}

	result, err := h.api.RegisterCustomer(c.Request.Context(), creditapi.RegisterRequest{
		FirstName:     form.FirstName,
		LastName:      form.LastName,
		Age:           age,
		MonthlyIncome: income,
		PhoneNumber:   form.PhoneNumber,
	})
	if err != nil {
		c.HTML(http.StatusOK, "register", registerView{Form: form, Error: errorMessage(err)})
		return
	}

	c.HTML(http.StatusOK, "register", registerView{Result: result})
}

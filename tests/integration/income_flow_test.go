package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func createIncome(t *testing.T, app *testApp, token, body string) map[string]interface{} {
	t.Helper()
	rec := app.request("POST", "/api/v1/incomes", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create income failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["income"].(map[string]interface{})
}

func amountsOf(income map[string]interface{}) []float64 {
	raw, ok := income["amounts"].([]interface{})
	if !ok {
		return nil
	}
	out := make([]float64, len(raw))
	for i, v := range raw {
		out[i] = v.(float64)
	}
	return out
}

func TestIncomeFlow_WeeklyForwardFill(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "income@test.com", "password123")

	// Zero slots inherit the nearest earlier non-zero amount.
	income := createIncome(t, app, token,
		`{"source":"Freelance","amount":50000,"frequency":"weekly","amounts":[40000,0,60000,0]}`)

	got := amountsOf(income)
	want := []float64{40000, 40000, 60000, 60000}
	if len(got) != len(want) {
		t.Fatalf("expected %d amounts, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("amounts[%d]: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestIncomeFlow_ShortArrayPadded(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "income@test.com", "password123")

	income := createIncome(t, app, token,
		`{"source":"Consulting","amount":100000,"frequency":"biweekly","amounts":[120000]}`)

	got := amountsOf(income)
	if len(got) != 2 {
		t.Fatalf("expected 2 amounts for biweekly, got %d", len(got))
	}
	// The missing second slot inherits the first.
	if got[0] != 120000 || got[1] != 120000 {
		t.Errorf("expected [120000 120000], got %v", got)
	}
}

func TestIncomeFlow_MonthlyRejectsAmounts(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "income@test.com", "password123")

	rec := app.request("POST", "/api/v1/incomes",
		`{"source":"Salary","amount":300000,"frequency":"monthly","amounts":[300000]}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "MONTHLY_HAS_NO_PERIODS" {
		t.Errorf("expected MONTHLY_HAS_NO_PERIODS, got %v", errObj["code"])
	}
}

func TestIncomeFlow_TooManyAmountsRejected(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "income@test.com", "password123")

	rec := app.request("POST", "/api/v1/incomes",
		`{"source":"Consulting","amount":100000,"frequency":"biweekly","amounts":[1,2,3]}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestIncomeFlow_UpdatePeriodAmount(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "income@test.com", "password123")

	income := createIncome(t, app, token,
		`{"source":"Freelance","amount":50000,"frequency":"weekly"}`)
	incomeID := income["id"].(string)

	rec := app.request("PUT",
		fmt.Sprintf("/api/v1/incomes/%s/amounts/2", incomeID), `{"amount":75000}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("update period failed: %d %s", rec.Code, rec.Body.String())
	}
	got := amountsOf(parseJSON(t, rec)["income"].(map[string]interface{}))
	if len(got) != 4 || got[2] != 75000 {
		t.Fatalf("expected index 2 set to 75000, got %v", got)
	}

	// Out-of-range index for the frequency.
	rec = app.request("PUT",
		fmt.Sprintf("/api/v1/incomes/%s/amounts/4", incomeID), `{"amount":75000}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range index, got %d", rec.Code)
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "INVALID_PERIOD_INDEX" {
		t.Errorf("expected INVALID_PERIOD_INDEX, got %v", errObj["code"])
	}
}

func TestIncomeFlow_FrequencyChangeResetsAmounts(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "income@test.com", "password123")

	income := createIncome(t, app, token,
		`{"source":"Freelance","amount":50000,"frequency":"weekly","amounts":[40000,0,60000,0]}`)
	incomeID := income["id"].(string)

	rec := app.request("PUT", "/api/v1/incomes/"+incomeID,
		`{"frequency":"biweekly"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("update income failed: %d %s", rec.Code, rec.Body.String())
	}
	updated := parseJSON(t, rec)["income"].(map[string]interface{})
	got := amountsOf(updated)
	if len(got) != 2 {
		t.Fatalf("expected amounts reset to 2 slots for biweekly, got %v", got)
	}
	for i, v := range got {
		if v != 0 {
			t.Errorf("amounts[%d]: expected reset to 0, got %v", i, v)
		}
	}
}

func TestIncomeFlow_CrossUserAccessDenied(t *testing.T) {
	app := setupApp(t)
	ownerToken, _, _ := app.registerUser(t, "owner@test.com", "password123")
	otherToken, _, _ := app.registerUser(t, "intruder@test.com", "password123")

	income := createIncome(t, app, ownerToken,
		`{"source":"Salary","amount":300000,"frequency":"monthly"}`)
	incomeID := income["id"].(string)

	rec := app.request("GET", "/api/v1/incomes/"+incomeID, "", otherToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another user's income, got %d", rec.Code)
	}
}

package accounts

import "testing"

func TestSignedBalance(t *testing.T) {
	cases := []struct {
		name   string
		typ    AccountType
		debit  float64
		credit float64
		want   float64
	}{
		{"asset debit normal", AccountTypeAsset, 150, 40, 110},
		{"expense debit normal", AccountTypeExpense, 150, 40, 110},
		{"cost of service debit normal", AccountTypeCostOfService, 150, 40, 110},
		{"liability credit normal", AccountTypeLiability, 40, 150, 110},
		{"equity credit normal", AccountTypeEquity, 40, 150, 110},
		{"revenue credit normal", AccountTypeRevenue, 40, 150, 110},
		{"asset overdrawn goes negative", AccountTypeAsset, 40, 150, -110},
		{"revenue reversed goes negative", AccountTypeRevenue, 150, 40, -110},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.typ.SignedBalance(tc.debit, tc.credit); got != tc.want {
				t.Fatalf("SignedBalance(%v, %v) = %v, want %v", tc.debit, tc.credit, got, tc.want)
			}
		})
	}
}

func TestDebitNormal(t *testing.T) {
	debitNormal := []AccountType{AccountTypeAsset, AccountTypeExpense, AccountTypeCostOfService}
	creditNormal := []AccountType{AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue}
	for _, typ := range debitNormal {
		if !typ.DebitNormal() {
			t.Fatalf("expected %s to be debit normal", typ)
		}
	}
	for _, typ := range creditNormal {
		if typ.DebitNormal() {
			t.Fatalf("expected %s to be credit normal", typ)
		}
	}
}

func TestAccountTypeValid(t *testing.T) {
	if !AccountTypeCostOfService.Valid() {
		t.Fatal("expected COST_OF_SERVICE to be valid")
	}
	if AccountType("SOMETHING").Valid() {
		t.Fatal("expected unknown type to be invalid")
	}
}

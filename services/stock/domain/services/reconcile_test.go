package services

import (
	"testing"
)

func TestReconcileImport(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantNames    []string
		wantAccepted int
		wantRejected int
	}{
		{
			"simple lines",
			"Milk\nCheese\nEggs",
			[]string{"Milk", "Cheese", "Eggs"},
			3, 0,
		},
		{
			"duplicates collapse without counting as rejected",
			"Milk\nMilk\n\nCheese",
			[]string{"Milk", "Cheese"},
			2, 1,
		},
		{
			"comma takes first field",
			"Milk,dairy,2\nCheese,dairy",
			[]string{"Milk", "Cheese"},
			2, 0,
		},
		{
			"tab wins over comma when both present",
			"Brie, soft\tcheese\nMilk",
			[]string{"Brie, soft", "Milk"},
			2, 0,
		},
		{
			"fields trimmed",
			"  Milk  ,dairy\n   Cheese   ",
			[]string{"Milk", "Cheese"},
			2, 0,
		},
		{
			"blank and separator-only lines rejected",
			"\n   \n,dairy\nMilk",
			[]string{"Milk"},
			1, 3,
		},
		{
			"empty input",
			"",
			nil,
			0, 1,
		},
		{
			"windows line endings leave no stray names",
			"Milk\r\nCheese",
			[]string{"Milk", "Cheese"},
			2, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReconcileImport(tt.raw)

			if got.Accepted != tt.wantAccepted {
				t.Fatalf("Accepted = %d, want %d", got.Accepted, tt.wantAccepted)
			}
			if got.Rejected != tt.wantRejected {
				t.Fatalf("Rejected = %d, want %d", got.Rejected, tt.wantRejected)
			}
			if len(got.Upserts) != len(tt.wantNames) {
				t.Fatalf("Upserts = %v, want names %v", got.Upserts, tt.wantNames)
			}
			for i, cn := range got.Upserts {
				if cn.Name != tt.wantNames[i] {
					t.Fatalf("Upserts[%d].Name = %q, want %q", i, cn.Name, tt.wantNames[i])
				}
			}
		})
	}
}

func TestReconcileImport_AcceptedMatchesUpserts(t *testing.T) {
	got := ReconcileImport("Milk\nMilk\nCheese\nMilk,dairy")
	if got.Accepted != len(got.Upserts) {
		t.Fatalf("Accepted = %d but %d upserts", got.Accepted, len(got.Upserts))
	}
}

func TestReconcileImport_Idempotent(t *testing.T) {
	raw := "Milk\nCheese,dairy\n\nEggs"

	first := ReconcileImport(raw)
	second := ReconcileImport(raw)

	if first.Accepted != second.Accepted || first.Rejected != second.Rejected {
		t.Fatalf("counts differ across runs: %+v vs %+v", first, second)
	}
	for i := range first.Upserts {
		if first.Upserts[i] != second.Upserts[i] {
			t.Fatalf("upserts differ across runs: %v vs %v", first.Upserts, second.Upserts)
		}
	}
}

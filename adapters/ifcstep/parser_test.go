package ifcstep

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"ifcdash/domain/chart"
	"ifcdash/domain/core"
	"ifcdash/domain/model"
	"ifcdash/ports"
)

const sampleIFC = `ISO-10303-21;
HEADER;
FILE_DESCRIPTION((''),'2;1');
FILE_NAME('sample.ifc','2024-01-15T10:00:00',(''),(''),'','','');
FILE_SCHEMA(('IFC4'));
ENDSEC;
DATA;
#1=IFCPROJECT('0YvctVUKr0kugbFTf53O9L',#2,'Sample Project',$,$,$,$,(#20),#7);
#10=IFCWALL('2O2Fr$t4X7Zf8NOew3FLOH',#2,'Wall:Ext01',$,$,#11,#12,$,.NOTDEFINED.);
#13=IFCWALL('2O2Fr$t4X7Zf8NOew3FLOI',#2,'Wall:Ext02',$,$,#14,#15,$,.NOTDEFINED.);
#16=IFCWALL('2O2Fr$t4X7Zf8NOew3FLOJ',#2,'Wall:Int01',$,$,#17,#18,$,.NOTDEFINED.);
#19=IFCWALLSTANDARDCASE('2O2Fr$t4X7Zf8NOew3FLOK',#2,$,$,$,#21,#22,$,.NOTDEFINED.);
#23=IFCDOOR('1hqIFTRjfV6AWq_bMtnZwI',#2,'Door:D01',$,$,#24,#25,$,2.1,0.9);
#26=IFCDOOR('1hqIFTRjfV6AWq_bMtnZwJ',#2,'Door:D02',$,$,#27,#28,$,2.1,0.9);
#29=IFCSLAB('1wAj$nUUv529Cbd8oMpDg5',#2,'Slab:Ground, Level 0',$,$,#30,#31,$,.FLOOR.);
#32=IFCCARTESIANPOINT((0.,0.,0.));
#33=IFCRELDEFINESBYPROPERTIES('2ABC',#2,$,$,(#10,#13),#34);
ENDSEC;
END-ISO-10303-21;
`

func openSample(t *testing.T, content string) *stepModel {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.ifc")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := NewParser().Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m.(*stepModel)
}

func TestOpen(t *testing.T) {
	t.Run("missing file is a parse failure", func(t *testing.T) {
		_, err := NewParser().Open(context.Background(), "/no/such/file.ifc")
		if !core.IsParseFailure(err) {
			t.Errorf("err = %v, want ParseFailure", err)
		}
	})

	t.Run("file without data section is a parse failure", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bogus.ifc")
		if err := os.WriteFile(path, []byte("not a step file"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := NewParser().Open(context.Background(), path)
		if !core.IsParseFailure(err) {
			t.Errorf("err = %v, want ParseFailure", err)
		}
	})

	t.Run("cancelled context aborts the scan", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sample.ifc")
		if err := os.WriteFile(path, []byte(sampleIFC), 0o644); err != nil {
			t.Fatal(err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := NewParser().Open(ctx, path); err == nil {
			t.Error("expected error from cancelled context")
		}
	})
}

func TestEntitiesOf(t *testing.T) {
	m := openSample(t, sampleIFC)

	t.Run("product query excludes non-products", func(t *testing.T) {
		products := m.EntitiesOf(ports.KindProduct)
		// 4 walls + 2 doors + 1 slab; project, points and relations excluded
		if len(products) != 7 {
			t.Fatalf("products = %d, want 7", len(products))
		}

		counts, warnings := model.CountByType(products)
		if len(warnings) != 0 {
			t.Fatalf("warnings: %v", warnings)
		}
		want := model.FrequencyTable{
			"IfcWall": 3, "IfcWallStandardCase": 1, "IfcDoor": 2, "IfcSlab": 1,
		}
		if !reflect.DeepEqual(counts, want) {
			t.Errorf("counts = %v, want %v", counts, want)
		}
	})

	t.Run("typed query with display names", func(t *testing.T) {
		walls := m.EntitiesOf("IfcWall")
		if len(walls) != 3 {
			t.Fatalf("walls = %d, want 3", len(walls))
		}

		grouped := model.GroupByNamePrefix(walls)
		if grouped["Wall"] != 3 {
			t.Errorf("grouped = %v, want Wall:3", grouped)
		}
	})

	t.Run("unset name attribute reports absent", func(t *testing.T) {
		cases := m.EntitiesOf("IfcWallStandardCase")
		if len(cases) != 1 {
			t.Fatalf("standard cases = %d, want 1", len(cases))
		}
		if _, ok := cases[0].DisplayName(); ok {
			t.Error("expected absent display name for $ attribute")
		}
	})

	t.Run("name with comma survives attribute splitting", func(t *testing.T) {
		slabs := m.EntitiesOf("IfcSlab")
		if len(slabs) != 1 {
			t.Fatalf("slabs = %d, want 1", len(slabs))
		}
		name, ok := slabs[0].DisplayName()
		if !ok || name != "Slab:Ground, Level 0" {
			t.Errorf("name = %q (%v)", name, ok)
		}
	})
}

func TestEndToEndPieScenario(t *testing.T) {
	content := `ISO-10303-21;
HEADER;
ENDSEC;
DATA;
#1=IFCWALL('a1',#2,'Wall:01',$,$,$,$,$,.NOTDEFINED.);
#2=IFCWALL('a2',#2,'Wall:02',$,$,$,$,$,.NOTDEFINED.);
#3=IFCWALL('a3',#2,'Wall:03',$,$,$,$,$,.NOTDEFINED.);
#4=IFCWALL('a4',#2,'Wall:04',$,$,$,$,$,.NOTDEFINED.);
#5=IFCWALL('a5',#2,'Wall:05',$,$,$,$,$,.NOTDEFINED.);
#6=IFCDOOR('b1',#2,'Door:01',$,$,$,$,$,2.1,0.9);
#7=IFCDOOR('b2',#2,'Door:02',$,$,$,$,$,2.1,0.9);
#8=IFCDOOR('b3',#2,'Door:03',$,$,$,$,$,2.1,0.9);
ENDSEC;
END-ISO-10303-21;
`
	m := openSample(t, content)

	counts, warnings := model.CountByType(m.EntitiesOf(ports.KindProduct))
	if len(warnings) != 0 {
		t.Fatalf("warnings: %v", warnings)
	}

	series := chart.BuildSeries(counts, chart.KindPie)
	if !reflect.DeepEqual(series.Labels, []string{"IfcWall", "IfcDoor"}) {
		t.Errorf("labels = %v, want [IfcWall IfcDoor]", series.Labels)
	}
	if !reflect.DeepEqual(series.Values, []int{5, 3}) {
		t.Errorf("values = %v, want [5 3]", series.Values)
	}
	if series.Kind != chart.KindPie {
		t.Errorf("kind = %q, want pie", series.Kind)
	}
}

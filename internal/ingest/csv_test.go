package ingest

import (
	"strings"
	"testing"
)

func TestReadDirectoryCSVDiscardsHeader(t *testing.T) {
	data := "zipcode,county,district,road,rule\n100,臺北市,中正區,中正路1號,\n"
	rows, err := ReadDirectoryCSV(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Zipcode != "100" {
		t.Errorf("Zipcode = %q, want 100", rows[0].Zipcode)
	}
	if rows[0].HeadAddrStr != "臺北市中正區中正路1號" {
		t.Errorf("HeadAddrStr = %q", rows[0].HeadAddrStr)
	}
	if rows[0].RuleStr != "" {
		t.Errorf("RuleStr = %q, want empty", rows[0].RuleStr)
	}
}

func TestReadDirectoryCSVRejectsShortRow(t *testing.T) {
	data := "zipcode,addr\n100,中正路\n"
	_, err := ReadDirectoryCSV(strings.NewReader(data))
	if err == nil {
		t.Fatal("expected an error for a row with fewer than 3 fields")
	}
}

func TestReadDirectoryCSVWithRule(t *testing.T) {
	data := "zipcode,addr,rule\n100,中正路1號,以上\n"
	rows, err := ReadDirectoryCSV(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if rows[0].RuleStr != "以上" {
		t.Errorf("RuleStr = %q, want 以上", rows[0].RuleStr)
	}
}

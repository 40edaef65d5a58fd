package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"path"

	"github.com/LinkinStars/golang-util/gu"
)

func GetCsvData(filePath string) ([][]string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		fmt.Println("opens a csv failed, err:", err)
		return nil, ErrOpenCsv
	}
	defer f.Close()
	reader := csv.NewReader(f)
	preData, err := reader.ReadAll()
	if err != nil {
		fmt.Println("read a csv failed, err:", err)
		return nil, ErrReadCsv
	}
	return preData, nil
}

func CreateCsv(filePath string, data [][]string) error {
	if err := gu.CreateDirIfNotExist(path.Dir(filePath)); err != nil {
		return err
	}
	csvFile, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer csvFile.Close()
	csvWriter := csv.NewWriter(csvFile)
	err = csvWriter.WriteAll(data)
	if err != nil {
		fmt.Printf("error (%v)", err)
		return err
	}
	return nil
}

package batch

import (
	"fmt"

	capacity "Strata/internal/calc/capacity"
)

type CapacityBatchInput struct {
	Items []capacity.Input `json:"items"`
}

type CapacityBatchResult struct {
	Results []capacity.Result `json:"results"`
}

func CalculateCapacity(in CapacityBatchInput) (CapacityBatchResult, error) {
	if len(in.Items) == 0 {
		return CapacityBatchResult{}, fmt.Errorf("no items")
	}
	out := CapacityBatchResult{Results: make([]capacity.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := capacity.Calculate(item)
		if err != nil {
			return CapacityBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}

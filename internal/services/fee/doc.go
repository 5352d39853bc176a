/*
Package fee computes the two sides of the marketplace fee structure.

Consumer service fee: 10% of the order amount, clamped to $1.00–$14.99
in USD-equivalent terms, waived entirely for BDN+ subscribers. For
non-USD orders the clamp bounds are converted at current rates; when
no rates are cached the raw USD bounds are compared directly against
the local amount.

Business platform fee: 10% of the gross amount, 5% for BDN+ Business
subscribers, no clamp.

All results are rounded to 2 decimal places. The calculator holds no
mutable state and never returns an error: the worst a bad currency
code can do is fall back to unconverted USD bounds.

	calc := fee.NewCalculator(converter)
	svcFee := calc.ConsumerServiceFee(100, "USD", false) // 10.00
	breakdown := calc.BusinessNetAmount(200, "USD", true)
*/
package fee

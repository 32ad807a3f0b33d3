package lcar

// Padding marks the "don't care" cells past an entry's own width.
const _catalogFiller = '-'

// Maximal-length rule maps, one per width starting at MinWidth. Each entry
// is padded with _catalogFiller out to MaxWidth cells; position 1 (the
// leftmost cell) comes first.
//
// These are not a published table. Each entry was found by a search over
// the rule maps of its width in descending numeric order, position 1 most
// significant, keeping the first whose characteristic polynomial is
// primitive over GF(2). Maximal and the catalog tests recheck every entry
// with the gf2 package.
var _catalog = [...]string{
	"10--------------------------------------------------------------------------------------------------", // 2
	"110-------------------------------------------------------------------------------------------------", // 3
	"1101------------------------------------------------------------------------------------------------", // 4
	"11110-----------------------------------------------------------------------------------------------", // 5
	"101110----------------------------------------------------------------------------------------------", // 6
	"1111011---------------------------------------------------------------------------------------------", // 7
	"11111010--------------------------------------------------------------------------------------------", // 8
	"111111110-------------------------------------------------------------------------------------------", // 9
	"1111110100------------------------------------------------------------------------------------------", // 10
	"11111111110-----------------------------------------------------------------------------------------", // 11
	"111111100000----------------------------------------------------------------------------------------", // 12
	"1111111110110---------------------------------------------------------------------------------------", // 13
	"11111111111110--------------------------------------------------------------------------------------", // 14
	"111111111111100-------------------------------------------------------------------------------------", // 15
	"1111111111101010------------------------------------------------------------------------------------", // 16
	"11111111111111100-----------------------------------------------------------------------------------", // 17
	"111111111111110111----------------------------------------------------------------------------------", // 18
	"1111111111111111011---------------------------------------------------------------------------------", // 19
	"11111111111111111001--------------------------------------------------------------------------------", // 20
	"111111111111111110110-------------------------------------------------------------------------------", // 21
	"1111111111111111110010------------------------------------------------------------------------------", // 22
	"11111111111111111111110-----------------------------------------------------------------------------", // 23
	"111111111111111111111001----------------------------------------------------------------------------", // 24
	"1111111111111111111110100---------------------------------------------------------------------------", // 25
	"11111111111111111111111110--------------------------------------------------------------------------", // 26
	"111111111111111111111100011-------------------------------------------------------------------------", // 27
	"1111111111111111111111111011------------------------------------------------------------------------", // 28
	"11111111111111111111111111110-----------------------------------------------------------------------", // 29
	"111111111111111111111111000100----------------------------------------------------------------------", // 30
	"1111111111111111111111111100101---------------------------------------------------------------------", // 31
	"11111111111111111111111110111011--------------------------------------------------------------------", // 32
	"111111111111111111111111111110110-------------------------------------------------------------------", // 33
	"1111111111111111111111111111101011------------------------------------------------------------------", // 34
	"11111111111111111111111111111111110-----------------------------------------------------------------", // 35
	"111111111111111111111111111111101110----------------------------------------------------------------", // 36
	"1111111111111111111111111111111101010---------------------------------------------------------------", // 37
	"11111111111111111111111111111111111001--------------------------------------------------------------", // 38
	"111111111111111111111111111111111111110-------------------------------------------------------------", // 39
	"1111111111111111111111111111111110111101------------------------------------------------------------", // 40
	"11111111111111111111111111111111111111110-----------------------------------------------------------", // 41
	"111111111111111111111111111111111111110100----------------------------------------------------------", // 42
	"1111111111111111111111111111111111111111011---------------------------------------------------------", // 43
	"11111111111111111111111111111111111111011100--------------------------------------------------------", // 44
	"111111111111111111111111111111111111111111001-------------------------------------------------------", // 45
	"1111111111111111111111111111111111111111100010------------------------------------------------------", // 46
	"11111111111111111111111111111111111111111111100-----------------------------------------------------", // 47
	"111111111111111111111111111111111111111111111011----------------------------------------------------", // 48
	"1111111111111111111111111111111111111111111001000---------------------------------------------------", // 49
	"11111111111111111111111111111111111111111111100111--------------------------------------------------", // 50
	"111111111111111111111111111111111111111111111100111-------------------------------------------------", // 51
	"1111111111111111111111111111111111111111111101010100------------------------------------------------", // 52
	"11111111111111111111111111111111111111111111111111110-----------------------------------------------", // 53
	"111111111111111111111111111111111111111111111111111001----------------------------------------------", // 54
	"1111111111111111111111111111111111111111111111111011011---------------------------------------------", // 55
	"11111111111111111111111111111111111111111111111100111100--------------------------------------------", // 56
	"111111111111111111111111111111111111111111111111110101001-------------------------------------------", // 57
	"1111111111111111111111111111111111111111111111111111001000------------------------------------------", // 58
	"11111111111111111111111111111111111111111111111111110010111-----------------------------------------", // 59
	"111111111111111111111111111111111111111111111111111110110111----------------------------------------", // 60
	"1111111111111111111111111111111111111111111111111111111011001---------------------------------------", // 61
	"11111111111111111111111111111111111111111111111111111111001001--------------------------------------", // 62
	"111111111111111111111111111111111111111111111111111111111110100-------------------------------------", // 63
	"1111111111111111111111111111111111111111111111111111111111111011------------------------------------", // 64
	"11111111111111111111111111111111111111111111111111111111111111110-----------------------------------", // 65
	"111111111111111111111111111111111111111111111111111111111101111101----------------------------------", // 66
	"1111111111111111111111111111111111111111111111111111111111100111000---------------------------------", // 67
	"11111111111111111111111111111111111111111111111111111111111111101001--------------------------------", // 68
	"111111111111111111111111111111111111111111111111111111111111111111110-------------------------------", // 69
	"1111111111111111111111111111111111111111111111111111111111111111000000------------------------------", // 70
	"11111111111111111111111111111111111111111111111111111111111111110111101-----------------------------", // 71
	"111111111111111111111111111111111111111111111111111111111111111111110100----------------------------", // 72
	"1111111111111111111111111111111111111111111111111111111111111111111110000---------------------------", // 73
	"11111111111111111111111111111111111111111111111111111111111111111111111110--------------------------", // 74
	"111111111111111111111111111111111111111111111111111111111111111111110111111-------------------------", // 75
	"1111111111111111111111111111111111111111111111111111111111111111111110011000------------------------", // 76
	"11111111111111111111111111111111111111111111111111111111111111111111110110101-----------------------", // 77
	"111111111111111111111111111111111111111111111111111111111111111111111111010110----------------------", // 78
	"1111111111111111111111111111111111111111111111111111111111111111111111111010100---------------------", // 79
	"11111111111111111111111111111111111111111111111111111111111111111111111101110110--------------------", // 80
	"111111111111111111111111111111111111111111111111111111111111111111111111111111110-------------------", // 81
	"1111111111111111111111111111111111111111111111111111111111111111111111111111110000------------------", // 82
	"11111111111111111111111111111111111111111111111111111111111111111111111111111111110-----------------", // 83
	"111111111111111111111111111111111111111111111111111111111111111111111111111111110111----------------", // 84
	"1111111111111111111111111111111111111111111111111111111111111111111111111111111010100---------------", // 85
	"11111111111111111111111111111111111111111111111111111111111111111111111111111111111110--------------", // 86
	"111111111111111111111111111111111111111111111111111111111111111111111111111111111001101-------------", // 87
	"1111111111111111111111111111111111111111111111111111111111111111111111111111111111101111------------", // 88
	"11111111111111111111111111111111111111111111111111111111111111111111111111111111111111110-----------", // 89
	"111111111111111111111111111111111111111111111111111111111111111111111111111111111111110100----------", // 90
	"1111111111111111111111111111111111111111111111111111111111111111111111111111111111111010011---------", // 91
	"11111111111111111111111111111111111111111111111111111111111111111111111111111111111101100011--------", // 92
	"111111111111111111111111111111111111111111111111111111111111111111111111111111111111100100000-------", // 93
	"1111111111111111111111111111111111111111111111111111111111111111111111111111111111111111010110------", // 94
	"11111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111110-----", // 95
	"111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111101010----", // 96
	"1111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111101010---", // 97
	"11111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111010--", // 98
	"111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111100101-", // 99
	"1111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111110111101", // 100
}
